package usecase

import (
	"context"

	"mediguard-api/internal/converter"
	"mediguard-api/internal/delivery/dto"
	"mediguard-api/internal/domain/entity"
	"mediguard-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MedicationUsecase interface {
	GetMyMedications(ctx context.Context, userID int64) ([]dto.MedicationResponse, error)
	CreateMedication(ctx context.Context, userID int64, req *dto.CreateMedicationRequest) (*dto.CreatedResponse, error)
}

type medicationUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	medicationRepo repository.MedicationRepository
}

func NewMedicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicationRepo repository.MedicationRepository,
) MedicationUsecase {
	return &medicationUsecase{
		db:             db,
		log:            log,
		medicationRepo: medicationRepo,
	}
}

func (u *medicationUsecase) GetMyMedications(ctx context.Context, userID int64) ([]dto.MedicationResponse, error) {
	medications, err := u.medicationRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find medications for user %d: %+v", userID, err)
		return nil, err
	}

	return converter.MedicationsToResponses(medications), nil
}

func (u *medicationUsecase) CreateMedication(ctx context.Context, userID int64, req *dto.CreateMedicationRequest) (*dto.CreatedResponse, error) {
	medication := &entity.Medication{
		UserID:    userID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Time:      req.Time,
	}

	if err := u.medicationRepo.Create(ctx, u.db, medication); err != nil {
		u.log.Warnf("Failed to create medication for user %d: %+v", userID, err)
		return nil, err
	}

	u.log.Infof("Medication created: id=%d, user=%d", medication.ID, userID)
	return &dto.CreatedResponse{ID: medication.ID}, nil
}
