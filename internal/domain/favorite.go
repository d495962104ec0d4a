package domain

import "time"

type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	VehicleID string    `json:"vehicle_id"`
	CreatedAt time.Time `json:"created_at"`
}
