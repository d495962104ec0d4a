package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"autoloc/internal/domain"
	"autoloc/internal/pkg/utils"
)

// ErrSlotConflict is returned when a booking loses the race for a date
// range: either the in-transaction overlap re-check found a slot, or
// the database exclusion constraint rejected the insert at commit.
var ErrSlotConflict = errors.New("availability slot conflict")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type BookingModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	VehicleID  string    `gorm:"column:vehicle_id;index"`
	CustomerID string    `gorm:"column:customer_id;index"`
	OwnerID    string    `gorm:"column:owner_id;index"`
	StartDate  string    `gorm:"column:start_date"`
	EndDate    string    `gorm:"column:end_date"`
	TotalPrice int64     `gorm:"column:total_price"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (BookingModel) TableName() string { return "bookings" }

func toDomainBooking(m BookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		VehicleID:  m.VehicleID,
		CustomerID: m.CustomerID,
		OwnerID:    m.OwnerID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		TotalPrice: m.TotalPrice,
		Status:     domain.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BookingWithVehicle is a booking row joined with the vehicle fields
// list views need. VehiclePhotos stays JSON-encoded until conversion.
type BookingWithVehicle struct {
	domain.Booking
	VehicleName    string   `json:"vehicle_name"`
	VehicleType    string   `json:"vehicle_type"`
	VehicleAddress string   `json:"vehicle_address,omitempty"`
	VehiclePhotos  []string `json:"vehicle_photos"`
}

type bookingJoinRow struct {
	BookingModel
	VehicleName    string `gorm:"column:vehicle_name"`
	VehicleType    string `gorm:"column:vehicle_type"`
	VehicleAddress string `gorm:"column:vehicle_address"`
	VehiclePhotos  string `gorm:"column:vehicle_photos"`
}

// CreateWithSlot inserts the booking and its matching "booked"
// availability slot as one transaction: a booking must never exist
// without its hold. The overlap check is re-run inside the transaction;
// on PostgreSQL the no_slot_overlap exclusion constraint backs it up
// against concurrent transactions on other instances.
func (r *BookingRepository) CreateWithSlot(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		overlap, err := slotOverlapExists(tx, b.VehicleID, b.StartDate, b.EndDate)
		if err != nil {
			return err
		}
		if overlap {
			return ErrSlotConflict
		}

		m := BookingModel{
			ID:         b.ID,
			VehicleID:  b.VehicleID,
			CustomerID: b.CustomerID,
			OwnerID:    b.OwnerID,
			StartDate:  b.StartDate,
			EndDate:    b.EndDate,
			TotalPrice: b.TotalPrice,
			Status:     string(domain.BookingPending),
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		slot := availabilitySlotModel{
			ID:        uuid.New().String(),
			VehicleID: b.VehicleID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			Reason:    string(domain.SlotBooked),
		}
		if err := tx.Create(&slot).Error; err != nil {
			return err
		}

		b.Status = domain.BookingPending
		b.CreatedAt = m.CreatedAt
		b.UpdatedAt = m.UpdatedAt
		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// 23P01 exclusion_violation, 23505 unique_violation
			if (pgErr.Code == "23P01" || pgErr.Code == "23505") && pgErr.ConstraintName == "no_slot_overlap" {
				return ErrSlotConflict
			}
		}
		return err
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m BookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetByIDWithVehicle joins the vehicle row for the booking detail view.
func (r *BookingRepository) GetByIDWithVehicle(ctx context.Context, id string) (*BookingWithVehicle, error) {
	var row bookingJoinRow
	tx := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select(`bookings.*,
vehicles.name AS vehicle_name,
vehicles.type AS vehicle_type,
vehicles.address AS vehicle_address,
vehicles.photos AS vehicle_photos`).
		Joins("JOIN vehicles ON bookings.vehicle_id = vehicles.id").
		Where("bookings.id = ?", id).
		First(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rowToBookingWithVehicle(row), nil
}

// ListByUser returns the user's bookings scoped by role: their rentals
// as customer, or bookings against their vehicles as owner. Newest
// first, with vehicle name/type/photos joined for list rendering.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string, asOwner bool) ([]BookingWithVehicle, error) {
	column := "bookings.customer_id"
	if asOwner {
		column = "bookings.owner_id"
	}

	var rows []bookingJoinRow
	tx := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select(`bookings.*,
vehicles.name AS vehicle_name,
vehicles.type AS vehicle_type,
vehicles.address AS vehicle_address,
vehicles.photos AS vehicle_photos`).
		Joins("JOIN vehicles ON bookings.vehicle_id = vehicles.id").
		Where(column+" = ?", userID).
		Order("bookings.created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]BookingWithVehicle, 0, len(rows))
	for _, row := range rows {
		out = append(out, *rowToBookingWithVehicle(row))
	}
	return out, nil
}

// UpdateStatus writes the new status. When the new status is cancelled
// the matching "booked" slot is removed in the same transaction so the
// vehicle becomes searchable again for those dates.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&BookingModel{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}

		if status == domain.BookingCancelled {
			if err := tx.
				Where("vehicle_id = ? AND start_date = ? AND end_date = ? AND reason = ?",
					b.VehicleID, b.StartDate, b.EndDate, string(domain.SlotBooked)).
				Delete(&availabilitySlotModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func rowToBookingWithVehicle(row bookingJoinRow) *BookingWithVehicle {
	return &BookingWithVehicle{
		Booking:        *toDomainBooking(row.BookingModel),
		VehicleName:    row.VehicleName,
		VehicleType:    row.VehicleType,
		VehicleAddress: row.VehicleAddress,
		VehiclePhotos:  utils.StringToPhotos(row.VehiclePhotos),
	}
}
