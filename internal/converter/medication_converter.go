package converter

import (
	"mediguard-api/internal/delivery/dto"
	"mediguard-api/internal/domain/entity"
)

func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		ID:        medication.ID,
		UserID:    medication.UserID,
		Name:      medication.Name,
		Dosage:    medication.Dosage,
		Frequency: medication.Frequency,
		Time:      medication.Time,
	}
}

func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i := range medications {
		responses[i] = *MedicationToResponse(&medications[i])
	}
	return responses
}
