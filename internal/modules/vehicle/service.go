package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoloc/internal/domain"
	"autoloc/internal/repository"
)

// MaxPhotos is the cap on photos per vehicle.
const MaxPhotos = 10

type Service struct {
	vehicles VehicleRepository
	slots    AvailabilityRepository
	images   ImageStore
}

func NewService(vehicles VehicleRepository, slots AvailabilityRepository, images ImageStore) *Service {
	return &Service{vehicles: vehicles, slots: slots, images: images}
}

// Search validates the optional date filter and runs the composed
// structural + geographic + availability query.
func (s *Service) Search(ctx context.Context, f repository.VehicleFilters) ([]domain.Vehicle, error) {
	if f.Type != "" && !domain.VehicleType(f.Type).Valid() {
		return nil, ErrValidation
	}
	if (f.StartDate == "") != (f.EndDate == "") {
		return nil, ErrValidation
	}
	if f.StartDate != "" {
		if _, err := domain.ParseDate(f.StartDate); err != nil {
			return nil, ErrValidation
		}
		if _, err := domain.ParseDate(f.EndDate); err != nil {
			return nil, ErrValidation
		}
	}
	return s.vehicles.Search(ctx, f)
}

// GetByID returns the vehicle even when inactive; only search hides
// deactivated listings.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) Create(ctx context.Context, ownerID string, userType string, req CreateVehicleRequest) (*domain.Vehicle, error) {
	if userType != string(domain.UserOwner) {
		return nil, ErrOwnerOnly
	}
	if !domain.VehicleType(req.Type).Valid() {
		return nil, ErrValidation
	}

	v := &domain.Vehicle{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Type:         domain.VehicleType(req.Type),
		Description:  req.Description,
		PricePerDay:  req.PricePerDay,
		Address:      req.Address,
		Lat:          req.Lat,
		Lng:          req.Lng,
		AccessMethod: req.AccessMethod,
		IsActive:     true,
		Photos:       []string{},
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id, userID string, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.ownedVehicle(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if !domain.VehicleType(*req.Type).Valid() {
			return nil, ErrValidation
		}
		v.Type = domain.VehicleType(*req.Type)
	}
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.PricePerDay != nil {
		v.PricePerDay = *req.PricePerDay
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.Lat != nil {
		v.Lat = req.Lat
	}
	if req.Lng != nil {
		v.Lng = req.Lng
	}
	if req.AccessMethod != nil {
		v.AccessMethod = *req.AccessMethod
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.ownedVehicle(ctx, id, userID); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, id)
}

// ListAvailability is public: customers see blocked periods in the
// booking calendar.
func (s *Service) ListAvailability(ctx context.Context, vehicleID string) ([]domain.AvailabilitySlot, error) {
	if _, err := s.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	return s.slots.ListSlots(ctx, vehicleID)
}

// SetAvailability blocks or unblocks a date range on behalf of the
// owner. Blocked inserts skip the overlap check; unblock removes only
// the exact range that was blocked.
func (s *Service) SetAvailability(ctx context.Context, vehicleID, userID string, req AvailabilityRequest) ([]domain.AvailabilitySlot, error) {
	if _, err := s.ownedVehicle(ctx, vehicleID, userID); err != nil {
		return nil, err
	}

	if _, err := domain.ParseDate(req.StartDate); err != nil {
		return nil, ErrValidation
	}
	if _, err := domain.ParseDate(req.EndDate); err != nil {
		return nil, ErrValidation
	}
	if req.EndDate < req.StartDate {
		return nil, ErrValidation
	}

	if req.Action == "unblock" {
		if err := s.slots.RemoveSlot(ctx, vehicleID, req.StartDate, req.EndDate, domain.SlotBlocked); err != nil {
			return nil, err
		}
	} else {
		slot := &domain.AvailabilitySlot{
			VehicleID: vehicleID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Reason:    domain.SlotBlocked,
		}
		if err := s.slots.AddSlot(ctx, slot); err != nil {
			return nil, err
		}
	}

	return s.slots.ListSlots(ctx, vehicleID)
}

// AddPhotos uploads each file to the image store and appends the
// resulting URLs, enforcing the per-vehicle cap on the total.
func (s *Service) AddPhotos(ctx context.Context, vehicleID, userID string, files [][]byte) ([]string, error) {
	v, err := s.ownedVehicle(ctx, vehicleID, userID)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, ErrValidation
	}
	if len(v.Photos)+len(files) > MaxPhotos {
		return nil, ErrTooManyPhotos
	}

	urls := make([]string, 0, len(files))
	for i, data := range files {
		name := fmt.Sprintf("%s_%d", uuid.New().String(), i)
		url, err := s.images.Store(ctx, data, name)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	v.Photos = append(v.Photos, urls...)
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v.Photos, nil
}

func (s *Service) ownedVehicle(ctx context.Context, id, userID string) (*domain.Vehicle, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != userID {
		return nil, ErrForbidden
	}
	return v, nil
}
