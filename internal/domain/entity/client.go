package entity

import (
	"time"

	"gorm.io/gorm"
)

// Client represents a clinic patient. Managed elsewhere, read here as a lookup.
type Client struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string         `gorm:"type:varchar(150);not null" json:"full_name"`
	Phone     string         `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email     string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}
