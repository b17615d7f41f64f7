package entities

import "time"

// Session holds a visitor's current selection and the derivation computed
// from it. State and Derivation are always replaced together.
type Session struct {
	ID         string         `json:"id"`
	State      SelectionState `json:"state"`
	Derivation Derivation     `json:"derivation"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
