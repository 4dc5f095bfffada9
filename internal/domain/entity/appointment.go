package entity

import (
	"time"

	"gorm.io/gorm"
)

// AppointmentStatus represents the state of an appointment (cita)
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pendiente"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmado"
	AppointmentStatusRejected  AppointmentStatus = "Rechazado"
)

// IsValid reports whether s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusRejected:
		return true
	}
	return false
}

// Appointment represents one scheduled visit of a client to a dentist for a service
type Appointment struct {
	ID          int               `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID    int               `gorm:"not null;index" json:"client_id"`
	DentistID   int               `gorm:"not null;index" json:"dentist_id"`
	ServiceID   int               `gorm:"not null;index" json:"service_id"`
	StartTime   time.Time         `gorm:"type:timestamptz;not null;index" json:"start_time"`
	EndTime     time.Time         `gorm:"type:timestamptz;not null" json:"end_time"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pendiente'" json:"status"`
	ConfirmedAt *time.Time        `gorm:"type:timestamptz" json:"confirmed_at,omitempty"`
	SuspendedAt *time.Time        `gorm:"type:timestamptz" json:"suspended_at,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Client  Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Dentist Dentist `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Range returns the [start, end) window occupied by the appointment
func (a *Appointment) Range() TimeRange {
	return TimeRange{Start: a.StartTime, End: a.EndTime}
}

// ApplyStatus sets the status and stamps the matching transition time.
// Confirmations stamp ConfirmedAt, rejections stamp SuspendedAt.
func (a *Appointment) ApplyStatus(status AppointmentStatus, at time.Time) {
	a.Status = status
	switch status {
	case AppointmentStatusConfirmed:
		a.ConfirmedAt = &at
	case AppointmentStatusRejected:
		a.SuspendedAt = &at
	}
}
