package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID         string        `json:"id"`
	VehicleID  string        `json:"vehicle_id"`
	CustomerID string        `json:"customer_id"`
	OwnerID    string        `json:"owner_id"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	TotalPrice int64         `json:"total_price"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// bookingTransitions is the authoritative map of legal status changes.
// The bool marks transitions the customer may also invoke; all listed
// transitions are available to the owner.
var bookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingPending: {
		BookingConfirmed: false,
		BookingCancelled: true,
	},
	BookingConfirmed: {
		BookingCompleted: false,
		BookingCancelled: true,
	},
}

// CanTransition reports whether a booking in state from may move to
// state to, and whether the given actor is allowed to request it.
func CanTransition(from, to BookingStatus, isOwner bool) bool {
	customerAllowed, ok := bookingTransitions[from][to]
	if !ok {
		return false
	}
	return isOwner || customerAllowed
}
