package database

import (
	"context"
	"errors"

	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/services"
	"gorm.io/gorm"
)

// OrderStore keeps orders with their lines and payments.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// InsertOrder stores the order and its lines in one transaction.
func (s *OrderStore) InsertOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *OrderStore) FindOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.withSnapshot(s.db.WithContext(ctx)).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	query := s.withSnapshot(s.db.WithContext(ctx)).Order("created_at asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SetOrderStatus writes only the status column; updated_at is left alone.
func (s *OrderStore) SetOrderStatus(ctx context.Context, id, status string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := orderExists(tx, id); err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", id).UpdateColumn("status", status).Error
	})
}

// AppendPayment inserts a new payment row for the order. Existing rows are never replaced.
func (s *OrderStore) AppendPayment(ctx context.Context, orderID string, payment *models.Payment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := orderExists(tx, orderID); err != nil {
			return err
		}
		payment.ID = 0
		payment.OrderID = orderID
		return tx.Create(payment).Error
	})
}

// SumGrandTotals adds up grand_total over every stored order, whatever its status.
func (s *OrderStore) SumGrandTotals(ctx context.Context) (float64, int64, error) {
	var revenue float64
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(grand_total), 0), COUNT(*)").
		Row().Scan(&revenue, &count)
	if err != nil {
		return 0, 0, err
	}
	return revenue, count, nil
}

// withSnapshot preloads lines in input order and payments in append order.
func (s *OrderStore) withSnapshot(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_lines.id asc")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payments.id asc")
		})
}

func orderExists(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return services.ErrNotFound
	}
	return nil
}
