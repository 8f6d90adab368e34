package repository

import (
	"context"

	"mediguard-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicationRepository interface {
	Create(ctx context.Context, db *gorm.DB, medication *entity.Medication) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID int64) ([]entity.Medication, error)
}
