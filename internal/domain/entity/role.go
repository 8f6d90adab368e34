package entity

// Role names. The store does not restrict the column to these values.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)
