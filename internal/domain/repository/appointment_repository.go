package repository

import (
	"context"

	"mediguard-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
