package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/delivery/http/middleware"
	"healthcare-first-portal/internal/usecase"
	"healthcare-first-portal/pkg/response"
	"healthcare-first-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type SlotHandler struct {
	slotUsecase usecase.AppointmentSlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.AppointmentSlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

// List returns the provider's authored slots with optional filters
// @Summary List slots
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param status query string false "available or booked"
// @Success 200 {object} response.Response
// @Router /provider/slots [get]
func (h *SlotHandler) List(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	query := r.URL.Query()
	req := &dto.ListSlotsRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Status:    query.Get("status"),
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.slotUsecase.List(r.Context(), providerID, req)
	if err != nil {
		response.InternalServerError(w, "Failed to list slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved", result)
}

// Get returns one of the provider's slots
// @Summary Get a slot
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /provider/slots/{id} [get]
func (h *SlotHandler) Get(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot id", nil)
		return
	}

	result, err := h.slotUsecase.Get(r.Context(), providerID, id)
	if err != nil {
		h.writeSlotError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot retrieved", result)
}

// Create authors a slot, expanding recurrence eagerly
// @Summary Create a slot
// @Tags Slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSlotRequest true "Create Slot Request"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /provider/slots [post]
func (h *SlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.slotUsecase.Create(r.Context(), providerID, &req)
	if err != nil {
		h.writeSlotError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Slot created", result)
}

// Update modifies an unbooked slot
// @Summary Update a slot
// @Tags Slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Param request body dto.UpdateSlotRequest true "Update Slot Request"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /provider/slots/{id} [put]
func (h *SlotHandler) Update(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot id", nil)
		return
	}

	var req dto.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.slotUsecase.Update(r.Context(), providerID, id, &req)
	if err != nil {
		h.writeSlotError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot updated", result)
}

// Delete removes an unbooked slot
// @Summary Delete a slot
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /provider/slots/{id} [delete]
func (h *SlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot id", nil)
		return
	}

	if err := h.slotUsecase.Delete(r.Context(), providerID, id); err != nil {
		h.writeSlotError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted", nil)
}

func (h *SlotHandler) writeSlotError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrSlotNotFound:
		response.NotFound(w, "Slot not found")
	case usecase.ErrSlotConflict:
		response.UnprocessableEntity(w, "Slot overlaps an existing slot")
	case usecase.ErrSlotBooked:
		response.UnprocessableEntity(w, "Slot has an active booking")
	case usecase.ErrInvalidTimeWindow:
		response.UnprocessableEntity(w, "Start time must be before end time")
	case usecase.ErrInvalidDate:
		response.UnprocessableEntity(w, "Invalid date")
	case usecase.ErrPastDate:
		response.UnprocessableEntity(w, "Date must not be in the past")
	case usecase.ErrRecurrenceEndRequired:
		response.UnprocessableEntity(w, "Recurring slots need a recurrence end date")
	case usecase.ErrRecurrenceEndPast:
		response.UnprocessableEntity(w, "Recurrence end date must be after the slot date")
	default:
		response.InternalServerError(w, "Failed to process slot request")
	}
}
