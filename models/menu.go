package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultGSTRate is applied to menu items created without an explicit rate.
const DefaultGSTRate = 0.05

// MaxGSTRate is the highest GST slab a menu item may carry.
const MaxGSTRate = 0.28

type MenuItem struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Price       float64   `gorm:"type:double precision;not null" json:"price"`
	Description *string   `gorm:"type:text" json:"description"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	GSTRate     float64   `gorm:"type:double precision;not null" json:"gst_rate"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}
