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

type BlockedDayHandler struct {
	blockedDayUsecase usecase.BlockedDayUsecase
	validator         *validator.CustomValidator
}

func NewBlockedDayHandler(blockedDayUsecase usecase.BlockedDayUsecase, validator *validator.CustomValidator) *BlockedDayHandler {
	return &BlockedDayHandler{
		blockedDayUsecase: blockedDayUsecase,
		validator:         validator,
	}
}

// List returns the provider's blocked days, optionally within a date range
// @Summary List blocked days
// @Tags BlockedDays
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /provider/blocked-days [get]
func (h *BlockedDayHandler) List(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	query := r.URL.Query()
	result, err := h.blockedDayUsecase.List(r.Context(), providerID, query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		response.InternalServerError(w, "Failed to list blocked days")
		return
	}

	response.Success(w, http.StatusOK, "Blocked days retrieved", result)
}

// Create blocks a date, fully or for a partial window
// @Summary Create a blocked day
// @Tags BlockedDays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBlockedDayRequest true "Create Blocked Day Request"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /provider/blocked-days [post]
func (h *BlockedDayHandler) Create(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateBlockedDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.blockedDayUsecase.Create(r.Context(), providerID, &req)
	if err != nil {
		h.writeBlockedDayError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Blocked day created", result)
}

// Update modifies an existing blocked day
// @Summary Update a blocked day
// @Tags BlockedDays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blocked Day ID"
// @Param request body dto.UpdateBlockedDayRequest true "Update Blocked Day Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /provider/blocked-days/{id} [put]
func (h *BlockedDayHandler) Update(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blocked day id", nil)
		return
	}

	var req dto.UpdateBlockedDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.blockedDayUsecase.Update(r.Context(), providerID, id, &req)
	if err != nil {
		h.writeBlockedDayError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Blocked day updated", result)
}

// Delete removes a blocked day
// @Summary Delete a blocked day
// @Tags BlockedDays
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blocked Day ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /provider/blocked-days/{id} [delete]
func (h *BlockedDayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blocked day id", nil)
		return
	}

	if err := h.blockedDayUsecase.Delete(r.Context(), providerID, id); err != nil {
		h.writeBlockedDayError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Blocked day deleted", nil)
}

func (h *BlockedDayHandler) writeBlockedDayError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrBlockedDayNotFound:
		response.NotFound(w, "Blocked day not found")
	case usecase.ErrDateAlreadyBlocked:
		response.UnprocessableEntity(w, "This date is already blocked")
	case usecase.ErrPastDate:
		response.UnprocessableEntity(w, "Date must not be in the past")
	case usecase.ErrPartialTimesInvalid:
		response.UnprocessableEntity(w, "Partial blocks need a valid start and end time")
	case usecase.ErrInvalidDate:
		response.UnprocessableEntity(w, "Invalid date")
	default:
		response.InternalServerError(w, "Failed to process blocked day request")
	}
}
