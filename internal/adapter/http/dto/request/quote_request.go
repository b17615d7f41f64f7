package request

import (
	"strings"

	"webquote/internal/domain/entities"
	"webquote/internal/domain/quote"
)

type IssueQuoteRequest struct {
	SessionID       string `json:"session_id" binding:"required"`
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
}

// PreviewQuoteRequest describes a whole selection at once. Hosting is
// included unless include_hosting is explicitly false.
type PreviewQuoteRequest struct {
	Category          string   `json:"category"`
	Stack             string   `json:"stack"`
	IncludeHosting    *bool    `json:"include_hosting"`
	Extras            []string `json:"extras"`
	PluginIDs         []string `json:"plugin_ids"`
	AutomationIDs     []string `json:"automation_ids"`
	ContentServiceIDs []string `json:"content_service_ids"`
	SupportPackageID  string   `json:"support_package_id"`
}

func (r PreviewQuoteRequest) ToChoices() quote.Choices {
	extras := make([]entities.ExtraKey, 0, len(r.Extras))
	for _, e := range r.Extras {
		extras = append(extras, entities.ExtraKey(strings.ToLower(strings.TrimSpace(e))))
	}
	return quote.Choices{
		Category:          entities.Category(strings.ToLower(strings.TrimSpace(r.Category))),
		Stack:             entities.Stack(strings.ToLower(strings.TrimSpace(r.Stack))),
		ExcludeHosting:    r.IncludeHosting != nil && !*r.IncludeHosting,
		Extras:            extras,
		PluginIDs:         r.PluginIDs,
		AutomationIDs:     r.AutomationIDs,
		ContentServiceIDs: r.ContentServiceIDs,
		SupportPackageID:  strings.TrimSpace(r.SupportPackageID),
	}
}
