package converter

import (
	"clinica-dental-api/internal/delivery/dto"
	"clinica-dental-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Relations are included only when they were preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		ClientID:    appointment.ClientID,
		DentistID:   appointment.DentistID,
		ServiceID:   appointment.ServiceID,
		StartTime:   appointment.StartTime,
		EndTime:     appointment.EndTime,
		Status:      string(appointment.Status),
		ConfirmedAt: appointment.ConfirmedAt,
		SuspendedAt: appointment.SuspendedAt,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	if appointment.Client.ID != 0 {
		response.Client = ClientToResponse(&appointment.Client)
	}
	if appointment.Dentist.ID != 0 {
		response.Dentist = DentistToResponse(&appointment.Dentist)
	}
	if appointment.Service.ID != 0 {
		response.Service = ServiceToResponse(&appointment.Service)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
