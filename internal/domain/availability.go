package domain

import "time"

type SlotReason string

const (
	SlotBooked  SlotReason = "booked"
	SlotBlocked SlotReason = "blocked"
)

// DateLayout is the storage and wire format for calendar dates.
// Dates are stored as strings so inclusive-range SQL compares
// lexicographically on both PostgreSQL and SQLite.
const DateLayout = "2006-01-02"

// AvailabilitySlot marks an inclusive date range during which a vehicle
// cannot be newly booked. Created with reason "booked" when a booking is
// made, or "blocked" manually by the owner.
type AvailabilitySlot struct {
	ID        string     `json:"id"`
	VehicleID string     `json:"vehicle_id"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Reason    SlotReason `json:"reason"`
	CreatedAt time.Time  `json:"created_at"`
}

// ParseDate validates a calendar date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
