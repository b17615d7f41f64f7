package request

import "strings"

type SetCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type SetStackRequest struct {
	Stack string `json:"stack" binding:"required"`
}

// SetHostingRequest uses a pointer so an explicit false is told apart from a
// missing field.
type SetHostingRequest struct {
	IncludeHosting *bool `json:"include_hosting" binding:"required"`
}

func (r SetCategoryRequest) Normalized() string {
	return strings.ToLower(strings.TrimSpace(r.Category))
}

func (r SetStackRequest) Normalized() string {
	return strings.ToLower(strings.TrimSpace(r.Stack))
}
