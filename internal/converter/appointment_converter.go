package converter

import (
	"mediguard-api/internal/delivery/dto"
	"mediguard-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:         appointment.ID,
		PatientID:  appointment.PatientID,
		DoctorName: appointment.DoctorName,
		Specialty:  appointment.Specialty,
		Date:       appointment.Date,
		Time:       appointment.Time,
		Status:     string(appointment.Status),
	}
}

// AppointmentsToResponses never returns nil, so an empty list encodes as [].
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
