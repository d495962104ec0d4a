package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autoloc/internal/domain"
	"autoloc/internal/repository"
)

type Service struct {
	bookings BookingRepository
	vehicles VehicleReader
	slots    AvailabilityReader
}

func NewService(bookings BookingRepository, vehicles VehicleReader, slots AvailabilityReader) *Service {
	return &Service{bookings: bookings, vehicles: vehicles, slots: slots}
}

// Create makes a pending booking for the customer. The price is always
// computed from the vehicle row, never taken from the client, and the
// booking plus its "booked" availability slot are written atomically.
func (s *Service) Create(ctx context.Context, customerID string, req CreateBookingRequest) (*domain.Booking, error) {
	v, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !v.IsActive {
		return nil, ErrNotFound
	}

	if v.OwnerID == customerID {
		return nil, ErrSelfBooking
	}

	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	days := int64(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return nil, ErrValidation
	}

	overlap, err := s.slots.HasOverlap(ctx, v.ID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrConflict
	}

	b := &domain.Booking{
		VehicleID:  v.ID,
		CustomerID: customerID,
		OwnerID:    v.OwnerID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: days * v.PricePerDay,
		Status:     domain.BookingPending,
	}

	if err := s.bookings.CreateWithSlot(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return b, nil
}

// List returns the user's bookings in the requested role, newest first.
func (s *Service) List(ctx context.Context, userID, role string) ([]repository.BookingWithVehicle, error) {
	return s.bookings.ListByUser(ctx, userID, role == "owner")
}

// Get returns the booking with joined vehicle details; only the two
// parties may see it.
func (s *Service) Get(ctx context.Context, id, userID string) (*repository.BookingWithVehicle, error) {
	b, err := s.bookings.GetByIDWithVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.CustomerID != userID && b.OwnerID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// UpdateStatus applies one step of the status state machine. Any
// transition outside the table, or by the wrong party, is rejected.
// Cancellation releases the matching booked slot so the range becomes
// bookable again.
func (s *Service) UpdateStatus(ctx context.Context, id, userID string, newStatus string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	isOwner := b.OwnerID == userID
	isCustomer := b.CustomerID == userID
	if !isOwner && !isCustomer {
		return nil, ErrForbidden
	}

	target := domain.BookingStatus(newStatus)
	if !domain.CanTransition(b.Status, target, isOwner) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, b, target); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, id)
}
