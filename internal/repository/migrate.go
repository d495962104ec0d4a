package repository

import (
	"gorm.io/gorm"
)

// Migrate creates the schema for all repositories. On PostgreSQL it
// also installs the exclusion constraint that rejects overlapping
// availability slots per vehicle at commit time, so two racing booking
// transactions cannot both succeed even across server instances.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&vehicleModel{},
		&availabilitySlotModel{},
		&BookingModel{},
		&MessageModel{},
		&FavoriteModel{},
		&consentModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}
		if err := db.Exec(`
DO $$ BEGIN
  ALTER TABLE vehicle_availability
    ADD CONSTRAINT no_slot_overlap EXCLUDE USING gist (
      vehicle_id WITH =,
      daterange(start_date::date, end_date::date, '[]') WITH &&
    ) WHERE (reason = 'booked');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;
`).Error; err != nil {
			return err
		}
	}

	return nil
}
