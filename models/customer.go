package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID            string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone         *string   `gorm:"type:varchar(32)" json:"phone"`
	Email         *string   `gorm:"type:varchar(255)" json:"email"`
	LoyaltyPoints int       `gorm:"not null;default:0" json:"loyalty_points"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
