package booking

import (
	"context"

	"autoloc/internal/domain"
	"autoloc/internal/repository"
)

type BookingRepository interface {
	CreateWithSlot(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByIDWithVehicle(ctx context.Context, id string) (*repository.BookingWithVehicle, error)
	ListByUser(ctx context.Context, userID string, asOwner bool) ([]repository.BookingWithVehicle, error)
	UpdateStatus(ctx context.Context, b *domain.Booking, status domain.BookingStatus) error
}

type VehicleReader interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

type AvailabilityReader interface {
	HasOverlap(ctx context.Context, vehicleID, start, end string) (bool, error)
}
