package converter

import (
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"
)

// ProviderToResponse converts a Provider entity to its full response DTO
func ProviderToResponse(provider *entity.Provider) *dto.ProviderResponse {
	if provider == nil {
		return nil
	}
	return &dto.ProviderResponse{
		ID:             provider.ID,
		FirstName:      provider.FirstName,
		LastName:       provider.LastName,
		Email:          provider.Email,
		Phone:          provider.Phone,
		LicenseNumber:  provider.LicenseNumber,
		Specialization: provider.Specialization,
		ClinicName:     provider.ClinicName,
		City:           provider.City,
		State:          provider.State,
		Status:         string(provider.Status),
		CreatedAt:      provider.CreatedAt,
		UpdatedAt:      provider.UpdatedAt,
	}
}

// ProviderToSummary converts a Provider to its patient-facing directory entry
func ProviderToSummary(provider *entity.Provider) dto.ProviderSummaryResponse {
	return dto.ProviderSummaryResponse{
		ID:             provider.ID,
		Name:           provider.FullName(),
		Specialization: provider.Specialization,
		ClinicName:     provider.ClinicName,
		Location:       provider.Location(),
	}
}

// ProvidersToDirectory converts approved providers to the browse listing
func ProvidersToDirectory(providers []entity.Provider) *dto.ProviderDirectoryResponse {
	entries := make([]dto.ProviderSummaryResponse, len(providers))
	for i := range providers {
		entries[i] = ProviderToSummary(&providers[i])
	}
	return &dto.ProviderDirectoryResponse{
		Providers: entries,
		Total:     len(entries),
	}
}
