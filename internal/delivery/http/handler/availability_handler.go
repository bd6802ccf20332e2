package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/delivery/http/middleware"
	"healthcare-first-portal/internal/usecase"
	"healthcare-first-portal/pkg/response"
	"healthcare-first-portal/pkg/validator"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// GetWeekly returns the provider's weekly schedule
// @Summary Get weekly availability
// @Tags Availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /provider/availability [get]
func (h *AvailabilityHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.availabilityUsecase.GetWeekly(r.Context(), providerID)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to load availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved", result)
}

// Update replaces the provider's weekly schedule for the submitted days
// @Summary Update weekly availability
// @Tags Availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAvailabilityRequest true "Update Availability Request"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /provider/availability [put]
func (h *AvailabilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.availabilityUsecase.Update(r.Context(), providerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAvailabilityTimesRequired:
			response.UnprocessableEntity(w, "Start and end time are required for an active day")
		case usecase.ErrInvalidTimeWindow:
			response.UnprocessableEntity(w, "Start time must be before end time")
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to update availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability updated", result)
}
