package response

import (
	"time"

	"webquote/internal/domain/entities"
)

type LineItemResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TimelineResponse struct {
	Days            int `json:"days"`
	Weeks           int `json:"weeks"`
	DesignDays      int `json:"design_days"`
	DevelopmentDays int `json:"development_days"`
	TestingDays     int `json:"testing_days"`
}

// DerivationResponse is the quote shown next to a selection. Items is never
// null.
type DerivationResponse struct {
	Total    float64            `json:"total"`
	Items    []LineItemResponse `json:"items"`
	Duration int                `json:"duration"`
	Timeline TimelineResponse   `json:"timeline"`
}

type SelectionResponse struct {
	Category          string          `json:"category,omitempty"`
	Stack             string          `json:"stack,omitempty"`
	Extras            entities.Extras `json:"extras"`
	PluginIDs         []string        `json:"plugin_ids"`
	AutomationIDs     []string        `json:"automation_ids"`
	ContentServiceIDs []string        `json:"content_service_ids"`
	SupportPackageID  string          `json:"support_package_id,omitempty"`
	IncludeHosting    bool            `json:"include_hosting"`
}

type SessionResponse struct {
	SessionID string             `json:"session_id"`
	Selection SelectionResponse  `json:"selection"`
	Quote     DerivationResponse `json:"quote"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type PreviewResponse struct {
	Selection SelectionResponse  `json:"selection"`
	Quote     DerivationResponse `json:"quote"`
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{Name: it.Name, Value: it.Value})
	}
	return out
}

func FromDerivation(d entities.Derivation) DerivationResponse {
	return DerivationResponse{
		Total:    d.Breakdown.Total,
		Items:    FromLineItems(d.Breakdown.Items),
		Duration: d.Duration,
		Timeline: TimelineResponse{
			Days:            d.Timeline.Days,
			Weeks:           d.Timeline.Weeks,
			DesignDays:      d.Timeline.Design,
			DevelopmentDays: d.Timeline.Development,
			TestingDays:     d.Timeline.Testing,
		},
	}
}

func FromSelection(s entities.SelectionState) SelectionResponse {
	return SelectionResponse{
		Category:          string(s.Category),
		Stack:             string(s.Stack),
		Extras:            s.Extras,
		PluginIDs:         nonNil(s.PluginIDs),
		AutomationIDs:     nonNil(s.AutomationIDs),
		ContentServiceIDs: nonNil(s.ContentServiceIDs),
		SupportPackageID:  s.SupportPackageID,
		IncludeHosting:    s.IncludeHosting,
	}
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		SessionID: s.ID,
		Selection: FromSelection(s.State),
		Quote:     FromDerivation(s.Derivation),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromPreview(s entities.SelectionState, d entities.Derivation) PreviewResponse {
	return PreviewResponse{Selection: FromSelection(s), Quote: FromDerivation(d)}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
