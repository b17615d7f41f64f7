package entities

import "time"

// QuoteStatus represents the lifecycle of an issued quote.
//
// A quote is issued as pending and leaves that state exactly once.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is a frozen snapshot of a session's derivation, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Items, Total and Duration are copied from the derivation at issue time and
// are never recomputed.
type Quote struct {
	ID              string      `json:"id"`
	Number          string      `json:"number"`
	SessionID       string      `json:"session_id"`
	Category        Category    `json:"category,omitempty"`
	Stack           Stack       `json:"stack"`
	Items           []LineItem  `json:"items"`
	Total           float64     `json:"total"`
	Duration        int         `json:"duration"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerContact string      `json:"customer_contact,omitempty"`
	Status          QuoteStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
