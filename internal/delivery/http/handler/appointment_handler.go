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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Status(w, http.StatusUnauthorized)
		return
	}

	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Status(w, http.StatusUnauthorized)
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.Summary(err), h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.appointmentUsecase.CreateAppointment(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.JSON(w, http.StatusCreated, created)
}
