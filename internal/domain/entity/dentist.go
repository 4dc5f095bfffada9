package entity

import (
	"time"

	"gorm.io/gorm"
)

// Dentist represents an odontólogo working at the clinic
type Dentist struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string         `gorm:"type:varchar(150);not null" json:"full_name"`
	Specialty string         `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Phone     string         `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email     string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Services []Service `gorm:"many2many:dentist_services;" json:"services,omitempty"`
}

func (Dentist) TableName() string {
	return "dentists"
}

// DentistService links a dentist to the services they offer
type DentistService struct {
	DentistID int `gorm:"primaryKey" json:"dentist_id"`
	ServiceID int `gorm:"primaryKey" json:"service_id"`
}

func (DentistService) TableName() string {
	return "dentist_services"
}
