package converter

import (
	"healthcare-first-portal/internal/delivery/dto"
	"healthcare-first-portal/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:         appointment.ID,
		SlotID:     appointment.SlotID,
		ProviderID: appointment.ProviderID,
		PatientID:  appointment.PatientID,
		Status:     string(appointment.Status),
		Notes:      appointment.Notes,
		CreatedAt:  appointment.CreatedAt,
		UpdatedAt:  appointment.UpdatedAt,
	}
	if appointment.Slot.ID != 0 {
		response.Slot = SlotToResponse(&appointment.Slot)
	}
	return response
}

// AppointmentsToProviderListResponse converts appointments to the
// provider-facing listing, including patient info when preloaded.
func AppointmentsToProviderListResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.ProviderAppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = dto.ProviderAppointmentResponse{
			Appointment: *AppointmentToResponse(&appointments[i]),
		}
		if appointments[i].Patient.ID != uuid.Nil {
			responses[i].Patient = PatientToResponse(&appointments[i].Patient)
		}
	}

	statuses := make([]string, 0, len(entity.AppointmentStatuses()))
	for _, s := range entity.AppointmentStatuses() {
		statuses = append(statuses, string(s))
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
		Statuses:     statuses,
	}
}
