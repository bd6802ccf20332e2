package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/delivery/http/middleware"
	"healthcare-first-portal/internal/domain/entity"
	"healthcare-first-portal/internal/usecase"
	"healthcare-first-portal/pkg/response"
	"healthcare-first-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.ProviderAppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.ProviderAppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// List returns the provider's appointments with optional filters
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Appointment status"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /provider/appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	query := r.URL.Query()
	filter := &entity.AppointmentFilter{
		Status:    query.Get("status"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	if filter.Status != "" && !entity.IsValidAppointmentStatus(entity.AppointmentStatus(filter.Status)) {
		response.UnprocessableEntity(w, "Unknown appointment status")
		return
	}

	result, err := h.appointmentUsecase.List(r.Context(), providerID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved", result)
}

// UpdateStatus moves an appointment through its lifecycle
// @Summary Update appointment status
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /provider/appointments/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.UpdateStatus(r.Context(), providerID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated", result)
}

// Stats returns the provider's appointment counters
// @Summary Get appointment stats
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /provider/appointments/stats [get]
func (h *AppointmentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.appointmentUsecase.Stats(r.Context(), providerID)
	if err != nil {
		response.InternalServerError(w, "Failed to load stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved", result)
}

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}
