package entity

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booking owned by the patient who created it.
type Appointment struct {
	ID         int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  int64             `gorm:"index" json:"patient_id"`
	DoctorName string            `gorm:"type:text" json:"doctor_name"`
	Specialty  string            `gorm:"type:text" json:"specialty"`
	Date       string            `gorm:"type:text" json:"date"`
	Time       string            `gorm:"type:text" json:"time"`
	Status     AppointmentStatus `gorm:"type:text;default:'scheduled'" json:"status"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}
