package response

import (
	"time"

	"webquote/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID         string             `json:"quote_id"`
	Number          string             `json:"number"`
	SessionID       string             `json:"session_id"`
	Category        string             `json:"category,omitempty"`
	Stack           string             `json:"stack"`
	Items           []LineItemResponse `json:"items"`
	Total           float64            `json:"total"`
	Duration        int                `json:"duration"`
	CustomerName    string             `json:"customer_name,omitempty"`
	CustomerContact string             `json:"customer_contact,omitempty"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:         q.ID,
		Number:          q.Number,
		SessionID:       q.SessionID,
		Category:        string(q.Category),
		Stack:           string(q.Stack),
		Items:           FromLineItems(q.Items),
		Total:           q.Total,
		Duration:        q.Duration,
		CustomerName:    q.CustomerName,
		CustomerContact: q.CustomerContact,
		Status:          string(q.Status),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}
