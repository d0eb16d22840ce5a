package services

import (
	"context"

	"github.com/yeremiapane/bill-printing-app/models"
)

// CatalogStore resolves menu items by identity. A missing item yields ErrNotFound.
type CatalogStore interface {
	FindMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
}

// OrderStore persists order snapshots. Lookups of a missing order yield ErrNotFound.
type OrderStore interface {
	InsertOrder(ctx context.Context, order *models.Order) error
	FindOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, status string) ([]models.Order, error)
	SetOrderStatus(ctx context.Context, id, status string) error
	AppendPayment(ctx context.Context, orderID string, payment *models.Payment) error
	SumGrandTotals(ctx context.Context) (revenue float64, orders int64, err error)
}

// EventPublisher receives order lifecycle events after they are stored.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event models.OrderEvent) error
}
