package repository

import (
	"context"

	"mediguard-api/internal/domain/entity"
	domainRepo "mediguard-api/internal/domain/repository"

	"gorm.io/gorm"
)

type medicationRepository struct{}

func NewMedicationRepository() domainRepo.MedicationRepository {
	return &medicationRepository{}
}

func (r *medicationRepository) Create(ctx context.Context, db *gorm.DB, medication *entity.Medication) error {
	return db.WithContext(ctx).Create(medication).Error
}

func (r *medicationRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID int64) ([]entity.Medication, error) {
	var medications []entity.Medication
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&medications).Error
	if err != nil {
		return nil, err
	}
	return medications, nil
}
