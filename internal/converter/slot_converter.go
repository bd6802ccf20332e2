package converter

import (
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"

	"github.com/google/uuid"
)

// SlotToResponse converts an AppointmentSlot entity to its response DTO
func SlotToResponse(slot *entity.AppointmentSlot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	response := &dto.SlotResponse{
		ID:                slot.ID,
		ProviderID:        slot.ProviderID,
		Date:              slot.Date.Format("2006-01-02"),
		StartTime:         slot.StartTime,
		EndTime:           slot.EndTime,
		Timezone:          slot.Timezone,
		AppointmentType:   string(slot.AppointmentType),
		SlotDuration:      slot.SlotDuration,
		BreakDuration:     slot.BreakDuration,
		MaxAppointments:   slot.MaxAppointments,
		LocationType:      string(slot.LocationType),
		LocationAddress:   slot.LocationAddress,
		RoomNumber:        slot.RoomNumber,
		Fee:               slot.Fee,
		Currency:          slot.Currency,
		InsuranceAccepted: slot.InsuranceAccepted,
		Notes:             slot.Notes,
		Recurrence:        string(slot.Recurrence),
		IsActive:          slot.IsActive,
		IsBooked:          slot.IsBooked,
		CreatedAt:         slot.CreatedAt,
		UpdatedAt:         slot.UpdatedAt,
	}
	if slot.RecurrenceEndDate != nil {
		response.RecurrenceEndDate = slot.RecurrenceEndDate.Format("2006-01-02")
	}
	if slot.Provider.ID != uuid.Nil {
		summary := ProviderToSummary(&slot.Provider)
		response.Provider = &summary
	}
	return response
}

// SlotsToResponses converts a slice of slots to response DTOs
func SlotsToResponses(slots []entity.AppointmentSlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *SlotToResponse(&slots[i])
	}
	return responses
}

// SlotsToListResponse converts slots plus the authoring reference maps
func SlotsToListResponse(slots []entity.AppointmentSlot, includeReference bool) *dto.SlotListResponse {
	response := &dto.SlotListResponse{
		Slots: SlotsToResponses(slots),
		Total: len(slots),
	}
	if includeReference {
		response.AppointmentTypes = typeNamesToStrings(entity.AppointmentTypeNames())
		response.LocationTypes = locationNamesToStrings(entity.LocationTypeNames())
		response.RecurrenceOptions = recurrenceNamesToStrings(entity.RecurrenceNames())
	}
	return response
}

func typeNamesToStrings(names map[entity.AppointmentType]string) map[string]string {
	result := make(map[string]string, len(names))
	for k, v := range names {
		result[string(k)] = v
	}
	return result
}

func locationNamesToStrings(names map[entity.LocationType]string) map[string]string {
	result := make(map[string]string, len(names))
	for k, v := range names {
		result[string(k)] = v
	}
	return result
}

func recurrenceNamesToStrings(names map[entity.Recurrence]string) map[string]string {
	result := make(map[string]string, len(names))
	for k, v := range names {
		result[string(k)] = v
	}
	return result
}
