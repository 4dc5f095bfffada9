package converter

import (
	"clinica-dental-api/internal/delivery/dto"
	"clinica-dental-api/internal/domain/entity"
)

func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:       client.ID,
		FullName: client.FullName,
		Phone:    client.Phone,
		Email:    client.Email,
	}
}

func DentistToResponse(dentist *entity.Dentist) *dto.DentistResponse {
	if dentist == nil {
		return nil
	}
	return &dto.DentistResponse{
		ID:        dentist.ID,
		FullName:  dentist.FullName,
		Specialty: dentist.Specialty,
		Phone:     dentist.Phone,
		Email:     dentist.Email,
	}
}

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:              service.ID,
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
	}
}

// ServicesToResponses converts a slice of Service entities to slice of ServiceResponse DTOs
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ServiceToResponse(&services[i])
	}
	return responses
}
