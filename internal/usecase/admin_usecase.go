package usecase

import (
	"context"

	"mediguard-api/internal/delivery/dto"
	"mediguard-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminUsecase interface {
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

type adminUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
) AdminUsecase {
	return &adminUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
	}
}

// GetStats counts all accounts and all appointments at call time.
func (u *adminUsecase) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	users, err := u.userRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	return &dto.AdminStatsResponse{
		Users:        dto.CountResponse{Count: users},
		Appointments: dto.CountResponse{Count: appointments},
	}, nil
}
