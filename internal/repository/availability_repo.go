package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoloc/internal/domain"
)

// AvailabilityRepository is the ledger of date ranges during which a
// vehicle cannot be newly booked. Slots are inclusive calendar-date
// ranges tagged with the reason they exist.
type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

type availabilitySlotModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	VehicleID string    `gorm:"column:vehicle_id;index"`
	StartDate string    `gorm:"column:start_date"`
	EndDate   string    `gorm:"column:end_date"`
	Reason    string    `gorm:"column:reason"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (availabilitySlotModel) TableName() string { return "vehicle_availability" }

func toDomainSlot(m availabilitySlotModel) domain.AvailabilitySlot {
	return domain.AvailabilitySlot{
		ID:        m.ID,
		VehicleID: m.VehicleID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Reason:    domain.SlotReason(m.Reason),
		CreatedAt: m.CreatedAt,
	}
}

// ListSlots returns all slots for a vehicle ordered by start date.
func (r *AvailabilityRepository) ListSlots(ctx context.Context, vehicleID string) ([]domain.AvailabilitySlot, error) {
	var rows []availabilitySlotModel
	tx := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("start_date").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AvailabilitySlot, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSlot(m))
	}
	return out, nil
}

// HasOverlap reports whether any existing slot for the vehicle shares
// at least one day with [start, end]. Closed-interval intersection:
// existing.start <= end AND existing.end >= start. The reason is not
// filtered, so blocked periods also count as unavailable.
func (r *AvailabilityRepository) HasOverlap(ctx context.Context, vehicleID, start, end string) (bool, error) {
	return slotOverlapExists(r.db.WithContext(ctx), vehicleID, start, end)
}

func slotOverlapExists(db *gorm.DB, vehicleID, start, end string) (bool, error) {
	var cnt int64
	tx := db.Model(&availabilitySlotModel{}).
		Where("vehicle_id = ?", vehicleID).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// AddSlot inserts unconditionally. Callers creating "booked" slots must
// have already checked HasOverlap; owner "blocked" slots are inserted
// without an overlap check.
func (r *AvailabilityRepository) AddSlot(ctx context.Context, slot *domain.AvailabilitySlot) error {
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	m := availabilitySlotModel{
		ID:        slot.ID,
		VehicleID: slot.VehicleID,
		StartDate: slot.StartDate,
		EndDate:   slot.EndDate,
		Reason:    string(slot.Reason),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	slot.CreatedAt = m.CreatedAt
	return nil
}

// RemoveSlot deletes slots matching vehicle + exact date range + reason.
// Exact-match deletion: unblocking a sub-range of a blocked period is
// not supported.
func (r *AvailabilityRepository) RemoveSlot(ctx context.Context, vehicleID, start, end string, reason domain.SlotReason) error {
	return r.db.WithContext(ctx).
		Where("vehicle_id = ? AND start_date = ? AND end_date = ? AND reason = ?",
			vehicleID, start, end, string(reason)).
		Delete(&availabilitySlotModel{}).Error
}
