package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoloc/internal/domain"
	"autoloc/internal/pkg/utils"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

type FavoriteModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index:idx_fav_user_vehicle,unique"`
	VehicleID string    `gorm:"column:vehicle_id;index:idx_fav_user_vehicle,unique"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (FavoriteModel) TableName() string { return "favorites" }

// FavoriteWithVehicle is a favorite joined with the vehicle fields the
// favorites list renders.
type FavoriteWithVehicle struct {
	domain.Favorite
	VehicleName     string   `json:"vehicle_name"`
	VehicleType     string   `json:"vehicle_type"`
	VehicleAddress  string   `json:"vehicle_address"`
	PricePerDay     int64    `json:"price_per_day"`
	VehicleIsActive bool     `json:"vehicle_is_active"`
	VehiclePhotos   []string `json:"vehicle_photos"`
}

type favoriteJoinRow struct {
	FavoriteModel
	VehicleName     string `gorm:"column:vehicle_name"`
	VehicleType     string `gorm:"column:vehicle_type"`
	VehicleAddress  string `gorm:"column:vehicle_address"`
	PricePerDay     int64  `gorm:"column:price_per_day"`
	VehicleIsActive bool   `gorm:"column:vehicle_is_active"`
	VehiclePhotos   string `gorm:"column:vehicle_photos"`
}

// Toggle adds the (user, vehicle) pair if absent, removes it if
// present. Returns the resulting favorited state, so toggling twice is
// a round trip.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, vehicleID string) (bool, error) {
	var existing FavoriteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		First(&existing).Error

	if err == nil {
		if err := r.db.WithContext(ctx).Delete(&FavoriteModel{}, "id = ?", existing.ID).Error; err != nil {
			return true, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	m := FavoriteModel{
		ID:        uuid.New().String(),
		UserID:    userID,
		VehicleID: vehicleID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser returns the user's favorites newest first with vehicle
// details joined.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]FavoriteWithVehicle, error) {
	var rows []favoriteJoinRow
	tx := r.db.WithContext(ctx).Model(&FavoriteModel{}).
		Select(`favorites.*,
vehicles.name AS vehicle_name,
vehicles.type AS vehicle_type,
vehicles.address AS vehicle_address,
vehicles.price_per_day AS price_per_day,
vehicles.is_active AS vehicle_is_active,
vehicles.photos AS vehicle_photos`).
		Joins("JOIN vehicles ON favorites.vehicle_id = vehicles.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]FavoriteWithVehicle, 0, len(rows))
	for _, row := range rows {
		out = append(out, FavoriteWithVehicle{
			Favorite: domain.Favorite{
				ID:        row.ID,
				UserID:    row.UserID,
				VehicleID: row.VehicleID,
				CreatedAt: row.CreatedAt,
			},
			VehicleName:     row.VehicleName,
			VehicleType:     row.VehicleType,
			VehicleAddress:  row.VehicleAddress,
			PricePerDay:     row.PricePerDay,
			VehicleIsActive: row.VehicleIsActive,
			VehiclePhotos:   utils.StringToPhotos(row.VehiclePhotos),
		})
	}
	return out, nil
}
