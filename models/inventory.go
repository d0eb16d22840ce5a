package models

import (
	"time"

	"gorm.io/gorm"
)

type InventoryItem struct {
	ID                string    `gorm:"type:char(36);primaryKey" json:"id"`
	SKU               string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"sku"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	Quantity          float64   `gorm:"type:double precision;not null" json:"quantity"`
	Unit              string    `gorm:"type:varchar(20);not null;default:'unit'" json:"unit"`
	LowStockThreshold float64   `gorm:"type:double precision;not null;default:0" json:"low_stock_threshold"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	return nil
}

// IsLowStock reports whether the item is at or below its alert threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
