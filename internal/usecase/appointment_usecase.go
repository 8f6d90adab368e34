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

type AppointmentUsecase interface {
	GetMyAppointments(ctx context.Context, patientID int64) ([]dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, patientID int64, req *dto.CreateAppointmentRequest) (*dto.CreatedResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// GetMyAppointments returns only the appointments owned by patientID.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, patientID int64) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// CreateAppointment books an appointment owned by patientID.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, patientID int64, req *dto.CreateAppointmentRequest) (*dto.CreatedResponse, error) {
	appointment := &entity.Appointment{
		PatientID:  patientID,
		DoctorName: req.DoctorName,
		Specialty:  req.Specialty,
		Date:       req.Date,
		Time:       req.Time,
		Status:     entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment for patient %d: %+v", patientID, err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, specialty=%s", appointment.ID, patientID, appointment.Specialty)
	return &dto.CreatedResponse{ID: appointment.ID}, nil
}
