package vehicle

import (
	"context"

	"autoloc/internal/domain"
	"autoloc/internal/repository"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, f repository.VehicleFilters) ([]domain.Vehicle, error)
}

type AvailabilityRepository interface {
	ListSlots(ctx context.Context, vehicleID string) ([]domain.AvailabilitySlot, error)
	AddSlot(ctx context.Context, slot *domain.AvailabilitySlot) error
	RemoveSlot(ctx context.Context, vehicleID, start, end string, reason domain.SlotReason) error
}

// ImageStore is the external image-hosting collaborator. Implementations
// live in the photo module (Cloudinary over HTTP, local disk for dev).
type ImageStore interface {
	Store(ctx context.Context, data []byte, filename string) (url string, err error)
}
