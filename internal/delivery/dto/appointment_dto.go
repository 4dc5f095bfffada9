package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	ClientID  int       `json:"client_id" validate:"required,min=1"`
	DentistID int       `json:"dentist_id" validate:"required,min=1"`
	ServiceID int       `json:"service_id" validate:"required,min=1"`
	StartTime time.Time `json:"start_time" validate:"required"` // ISO 8601
	EndTime   time.Time `json:"end_time" validate:"required"`   // ISO 8601
}

// UpdateAppointmentRequest carries a partial update; nil fields are left untouched.
type UpdateAppointmentRequest struct {
	ClientID    *int       `json:"client_id" validate:"omitempty,min=1"`
	DentistID   *int       `json:"dentist_id" validate:"omitempty,min=1"`
	ServiceID   *int       `json:"service_id" validate:"omitempty,min=1"`
	StartTime   *time.Time `json:"start_time" validate:"omitempty"`
	EndTime     *time.Time `json:"end_time" validate:"omitempty"`
	Status      *string    `json:"status" validate:"omitempty,oneof=Pendiente Confirmado Rechazado"`
	ConfirmedAt *time.Time `json:"confirmed_at" validate:"omitempty"`
	SuspendedAt *time.Time `json:"suspended_at" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int              `json:"id"`
	ClientID    int              `json:"client_id"`
	DentistID   int              `json:"dentist_id"`
	ServiceID   int              `json:"service_id"`
	StartTime   time.Time        `json:"start_time"`
	EndTime     time.Time        `json:"end_time"`
	Status      string           `json:"status"`
	ConfirmedAt *time.Time       `json:"confirmed_at,omitempty"`
	SuspendedAt *time.Time       `json:"suspended_at,omitempty"`
	Client      *ClientResponse  `json:"client,omitempty"`
	Dentist     *DentistResponse `json:"dentist,omitempty"`
	Service     *ServiceResponse `json:"service,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
