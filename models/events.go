package models

import "time"

// Order event types pushed to the kitchen display and the message bus.
const (
	EventOrderCreated       = "order_created"
	EventOrderStatusUpdated = "order_status_updated"
	EventPaymentAdded       = "payment_added"
)

// Totals are the rounded figures printed at the bottom of a bill.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxTotal   float64 `json:"tax_total"`
	GrandTotal float64 `json:"grand_total"`
}

type OrderEvent struct {
	Type    string    `json:"type"`
	OrderID string    `json:"order_id"`
	Status  string    `json:"status,omitempty"`
	TableNo *string   `json:"table_no,omitempty"`
	Totals  *Totals   `json:"totals,omitempty"`
	Payment *Payment  `json:"payment,omitempty"`
	At      time.Time `json:"at"`
}
