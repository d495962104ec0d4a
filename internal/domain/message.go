package domain

import "time"

// Message belongs to exactly one booking and is visible only to the
// booking's customer and owner. Append-only.
type Message struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`

	// Joined from users (populated by the repository)
	SenderName string `json:"sender_name,omitempty"`
}
