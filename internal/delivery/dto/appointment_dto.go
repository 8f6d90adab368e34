package dto

// Request DTOs

// CreateAppointmentRequest carries no owner field; the owner is always the caller.
type CreateAppointmentRequest struct {
	DoctorName string `json:"doctor_name" validate:"required"`
	Specialty  string `json:"specialty" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID         int64  `json:"id"`
	PatientID  int64  `json:"patient_id"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}
