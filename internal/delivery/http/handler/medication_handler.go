package handler

import (
	"encoding/json"
	"net/http"

	"mediguard-api/internal/delivery/dto"
	"mediguard-api/internal/delivery/http/middleware"
	"mediguard-api/internal/usecase"
	"mediguard-api/pkg/response"
	"mediguard-api/pkg/validator"
)

type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
	validator         *validator.CustomValidator
}

func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase, validator *validator.CustomValidator) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
		validator:         validator,
	}
}

func (h *MedicationHandler) GetMyMedications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Status(w, http.StatusUnauthorized)
		return
	}

	medications, err := h.medicationUsecase.GetMyMedications(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get medications")
		return
	}

	response.JSON(w, http.StatusOK, medications)
}

func (h *MedicationHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Status(w, http.StatusUnauthorized)
		return
	}

	var req dto.CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Summary(err), h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.medicationUsecase.CreateMedication(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medication")
		return
	}

	response.JSON(w, http.StatusCreated, created)
}
