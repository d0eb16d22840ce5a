package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses. Any status may follow any other.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
	OrderStatusCancelled = "cancelled"
)

// OrderStatuses lists every accepted status value.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
	OrderStatusCancelled,
}

// Order is the billing snapshot of a table's cart. Its lines and totals are
// fixed at creation; only Status and Payments change afterwards.
type Order struct {
	ID         string      `gorm:"type:char(36);primaryKey" json:"id"`
	TableNo    *string     `gorm:"type:varchar(50)" json:"table_no"`
	CustomerID *string     `gorm:"type:varchar(64);index" json:"customer_id"`
	Status     string      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Items      []OrderLine `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Subtotal   float64     `gorm:"type:double precision;not null;default:0" json:"subtotal"`
	TaxTotal   float64     `gorm:"type:double precision;not null;default:0" json:"tax_total"`
	GrandTotal float64     `gorm:"type:double precision;not null;default:0" json:"grand_total"`
	Discount   float64     `gorm:"type:double precision;not null;default:0" json:"discount"`
	Payments   []Payment   `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"payments"`
	Notes      *string     `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}

// AfterFind keeps the bill's lists as JSON arrays even when nothing was preloaded.
func (o *Order) AfterFind(tx *gorm.DB) error {
	if o.Items == nil {
		o.Items = []OrderLine{}
	}
	if o.Payments == nil {
		o.Payments = []Payment{}
	}
	return nil
}

// PaidAmount sums every recorded payment.
func (o Order) PaidAmount() float64 {
	var paid float64
	for _, p := range o.Payments {
		paid += p.Amount
	}
	return paid
}

// OrderLine is a frozen copy of a menu item as it was priced into an order.
type OrderLine struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	OrderID    string    `gorm:"type:char(36);not null;index" json:"-"`
	MenuItemID string    `gorm:"type:char(36);not null" json:"menu_item_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64   `gorm:"type:double precision;not null" json:"price"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Notes      *string   `gorm:"type:text" json:"notes"`
	GSTRate    float64   `gorm:"type:double precision;not null" json:"gst_rate"`
	CreatedAt  time.Time `gorm:"not null" json:"-"`
}

// LineSubtotal is the pre-tax amount of the line.
func (l OrderLine) LineSubtotal() float64 {
	return l.Price * float64(l.Quantity)
}
