package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service is a billable clinic service (servicio)
type Service struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int             `gorm:"not null;default:30" json:"duration_minutes"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Service) TableName() string {
	return "services"
}
