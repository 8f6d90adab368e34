package database

import (
	"fmt"

	"mediguard-api/internal/domain/entity"

	"gorm.io/gorm"
)

// Migrate creates the users, appointments, medications and health_logs
// tables. It is safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Appointment{},
		&entity.Medication{},
		&entity.HealthLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
