package converter

import (
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:                 patient.ID,
		FirstName:          patient.FirstName,
		LastName:           patient.LastName,
		Email:              patient.Email,
		Phone:              patient.Phone,
		Gender:             patient.Gender,
		Address:            patient.Address,
		Status:             patient.Status,
		AssignedProviderID: patient.AssignedProviderID,
		CreatedAt:          patient.CreatedAt,
		UpdatedAt:          patient.UpdatedAt,
	}
	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}
	return response
}

// PatientsToListResponse converts patients to a list response
func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}
