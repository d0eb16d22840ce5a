package models

import (
	"time"
)

// Payment methods accepted at the counter.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodUPI    = "upi"
	PaymentMethodWallet = "wallet"
	PaymentMethodSplit  = "split"
	PaymentMethodOther  = "other"
)

// Payment is one entry of an order's append-only payment list.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	OrderID   string    `gorm:"type:char(36);not null;index" json:"-"`
	Method    string    `gorm:"type:varchar(10);not null;default:'cash'" json:"method"`
	Amount    float64   `gorm:"type:double precision;not null;default:0" json:"amount"`
	Reference *string   `gorm:"type:varchar(255)" json:"reference"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
