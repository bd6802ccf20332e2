package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/delivery/http/middleware"
	"healthcare-first-portal/internal/usecase"
	"healthcare-first-portal/pkg/response"
	"healthcare-first-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// BookingHandler serves the patient-facing browsing and booking endpoints.
type BookingHandler struct {
	bookingUsecase      usecase.PatientBookingUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewBookingHandler(
	bookingUsecase usecase.PatientBookingUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
	validator *validator.CustomValidator,
) *BookingHandler {
	return &BookingHandler{
		bookingUsecase:      bookingUsecase,
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// ListProviders returns the directory of approved providers
// @Summary List bookable providers
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /patient/providers [get]
func (h *BookingHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	result, err := h.bookingUsecase.ListProviders(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list providers")
		return
	}

	response.Success(w, http.StatusOK, "Providers retrieved", result)
}

// ListAvailableSlots returns a provider's unbooked explicit slots
// @Summary List available slots
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /patient/providers/{id}/slots [get]
func (h *BookingHandler) ListAvailableSlots(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider id", nil)
		return
	}

	query := r.URL.Query()
	result, err := h.bookingUsecase.ListAvailableSlots(r.Context(), providerID, query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved", result)
}

// GenerateSlots expands a provider's availability into bookable windows
// @Summary Generate candidate slots for a date
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param slot_duration query int false "Window length in minutes"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /patient/providers/{id}/generate-slots [get]
func (h *BookingHandler) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider id", nil)
		return
	}

	query := r.URL.Query()
	req := &dto.GenerateSlotsRequest{Date: query.Get("date")}
	if raw := query.Get("slot_duration"); raw != "" {
		duration, err := parsePositiveInt(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid slot duration", nil)
			return
		}
		req.SlotDuration = duration
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bookingUsecase.GenerateSlots(r.Context(), providerID, req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slots generated", result)
}

// AvailabilityForDate resolves a provider's weekly window onto one date
// @Summary Get availability for a date
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /patient/providers/{id}/availability [get]
func (h *BookingHandler) AvailabilityForDate(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider id", nil)
		return
	}

	result, err := h.availabilityUsecase.GetForDate(r.Context(), providerID, r.URL.Query().Get("date"))
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrInvalidDate:
			response.UnprocessableEntity(w, "Invalid date")
		default:
			response.InternalServerError(w, "Failed to load availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved", result)
}

// BookBySlot books an explicit slot by id
// @Summary Book a slot
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookSlotRequest true "Book Slot Request"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /patient/appointments/book [post]
func (h *BookingHandler) BookBySlot(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.BookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bookingUsecase.BookBySlot(r.Context(), patientID, &req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked", result)
}

// BookByTime books a generated window, materializing its slot on demand
// @Summary Book a time window
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookByTimeRequest true "Book By Time Request"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /patient/appointments/book-by-time [post]
func (h *BookingHandler) BookByTime(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.BookByTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bookingUsecase.BookByTime(r.Context(), patientID, &req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked", result)
}

// MyAppointments returns the patient's appointments
// @Summary List my appointments
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /patient/appointments [get]
func (h *BookingHandler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.bookingUsecase.MyAppointments(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved", result)
}

func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrProviderNotFound:
		response.NotFound(w, "Provider not found")
	case usecase.ErrProviderNotBookable:
		response.NotFound(w, "Provider is not available for booking")
	case usecase.ErrSlotNotFound:
		response.NotFound(w, "Slot not found")
	case usecase.ErrSlotAlreadyBooked:
		response.UnprocessableEntity(w, "Slot is already booked")
	case usecase.ErrProviderUnavailable:
		response.UnprocessableEntity(w, "Provider has no availability on this day")
	case usecase.ErrOutsideAvailability:
		response.UnprocessableEntity(w, "Requested time is outside the provider's availability")
	case usecase.ErrDateBlocked:
		response.UnprocessableEntity(w, "Provider is not available on this date")
	case usecase.ErrTimeWindowBlocked:
		response.UnprocessableEntity(w, "Requested time falls in a blocked window")
	case usecase.ErrBookingDatePast:
		response.UnprocessableEntity(w, "Booking date must not be in the past")
	case usecase.ErrInvalidTimeWindow:
		response.UnprocessableEntity(w, "Start time must be before end time")
	case usecase.ErrInvalidDate:
		response.UnprocessableEntity(w, "Invalid date")
	default:
		response.InternalServerError(w, "Failed to process booking request")
	}
}
