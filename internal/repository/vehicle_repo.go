package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"autoloc/internal/domain"
	"autoloc/internal/pkg/geo"
	"autoloc/internal/pkg/utils"
)

// VehicleFilters are the optional search criteria. Zero values mean
// "not set". When OwnerID is given the active-only scoping is dropped
// so owners see their deactivated listings too.
type VehicleFilters struct {
	Type     string
	MinPrice int64
	MaxPrice int64
	OwnerID  string

	HasGeo bool
	Lat    float64
	Lng    float64
	Radius float64 // km

	StartDate string
	EndDate   string
}

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	OwnerID      string    `gorm:"column:owner_id;index"`
	Name         string    `gorm:"column:name"`
	Type         string    `gorm:"column:type"`
	Description  string    `gorm:"column:description;type:text"`
	PricePerDay  int64     `gorm:"column:price_per_day"`
	Address      string    `gorm:"column:address"`
	Lat          *float64  `gorm:"column:lat"`
	Lng          *float64  `gorm:"column:lng"`
	AccessMethod string    `gorm:"column:access_method;type:text"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	Photos       string    `gorm:"column:photos;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		Type:         domain.VehicleType(m.Type),
		Description:  m.Description,
		PricePerDay:  m.PricePerDay,
		Address:      m.Address,
		Lat:          m.Lat,
		Lng:          m.Lng,
		AccessMethod: m.AccessMethod,
		IsActive:     m.IsActive,
		Photos:       utils.StringToPhotos(m.Photos),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Name:         v.Name,
		Type:         string(v.Type),
		Description:  v.Description,
		PricePerDay:  v.PricePerDay,
		Address:      v.Address,
		Lat:          v.Lat,
		Lng:          v.Lng,
		AccessMethod: v.AccessMethod,
		IsActive:     v.IsActive,
		Photos:       utils.PhotosToString(v.Photos),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&vehicleModel{}, "id = ?", id).Error
}

// Search applies the structural filters, the geographic bounding-box
// pre-filter and the date-availability exclusion in SQL, newest first.
// The exact-distance post-filter runs on the result; the box is only a
// cheap rectangular approximation of the circle.
func (r *VehicleRepository) Search(ctx context.Context, f VehicleFilters) ([]domain.Vehicle, error) {
	q := r.db.WithContext(ctx).Model(&vehicleModel{})

	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	} else {
		q = q.Where("is_active = ?", true)
	}

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_day >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_day <= ?", f.MaxPrice)
	}

	if f.HasGeo {
		minLat, maxLat, minLng, maxLng := geo.BoundingBox(f.Lat, f.Lng, f.Radius)
		q = q.Where("lat BETWEEN ? AND ?", minLat, maxLat).
			Where("lng BETWEEN ? AND ?", minLng, maxLng)
	}

	if f.StartDate != "" && f.EndDate != "" {
		q = q.Where(`id NOT IN (
SELECT DISTINCT vehicle_id FROM vehicle_availability
WHERE start_date <= ? AND end_date >= ?)`, f.EndDate, f.StartDate)
	}

	var rows []vehicleModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		v := toDomainVehicle(m)
		if f.HasGeo {
			if v.Lat == nil || v.Lng == nil {
				continue
			}
			if geo.Distance(f.Lat, f.Lng, *v.Lat, *v.Lng) > f.Radius {
				continue
			}
		}
		out = append(out, *v)
	}
	return out, nil
}
