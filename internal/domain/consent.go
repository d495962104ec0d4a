package domain

import "time"

type ConsentType string

const (
	ConsentTOS     ConsentType = "tos"
	ConsentPrivacy ConsentType = "privacy"
)

// Consent is an append-only audit record. Never updated or deleted.
type Consent struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Type      ConsentType `json:"type"`
	Version   string      `json:"version"`
	CreatedAt time.Time   `json:"created_at"`
}
