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

// PatientHandler serves the provider-facing patient management endpoints
// plus the patient's own profile.
type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Create registers a new patient under the authenticated provider
// @Summary Create a patient
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /provider/patients [post]
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.Create(r.Context(), providerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientEmailTaken:
			response.Error(w, http.StatusConflict, "A patient with this email already exists", nil)
		case usecase.ErrInvalidDateOfBirth:
			response.UnprocessableEntity(w, "Date of birth must be a valid past date")
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", result)
}

// List returns the authenticated provider's patients
// @Summary List patients
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /provider/patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.patientUsecase.List(r.Context(), providerID)
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved", result)
}

// Get returns one of the provider's patients
// @Summary Get a patient
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /provider/patients/{id} [get]
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id", nil)
		return
	}

	result, err := h.patientUsecase.Get(r.Context(), providerID, patientID)
	if err != nil {
		h.writePatientError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved", result)
}

// Update modifies one of the provider's patients
// @Summary Update a patient
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /provider/patients/{id} [put]
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	providerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.Update(r.Context(), providerID, patientID, &req)
	if err != nil {
		h.writePatientError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient updated", result)
}

// Profile returns the authenticated patient's own account
// @Summary Get patient profile
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /patient/profile [get]
func (h *PatientHandler) Profile(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.patientUsecase.GetProfile(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileMissing:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to load profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved", result)
}

func (h *PatientHandler) writePatientError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrPatientNotOwned:
		response.Forbidden(w, "Patient is assigned to another provider")
	case usecase.ErrInvalidDateOfBirth:
		response.UnprocessableEntity(w, "Date of birth must be a valid past date")
	default:
		response.InternalServerError(w, "Failed to process patient request")
	}
}
