package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
)

// CreateOrderInput is a validated cart submission.
type CreateOrderInput struct {
	TableNo    *string
	CustomerID *string
	Items      []LineRequest
	Discount   float64
	Notes      *string
}

type CreateOrderResult struct {
	ID     string        `json:"id"`
	Totals models.Totals `json:"totals"`
}

type PaymentInput struct {
	Method    string
	Amount    float64
	Reference *string
}

// ReportFilter carries the requested reporting window.
type ReportFilter struct {
	DateFrom *string `json:"date_from"`
	DateTo   *string `json:"date_to"`
}

type SalesReport struct {
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// OrderService prices carts into orders and applies the later status and
// payment mutations to the stored snapshot.
type OrderService struct {
	catalog CatalogStore
	orders  OrderStore
	events  EventPublisher
	now     func() time.Time
}

// NewOrderService wires the service to its stores. events may be nil.
func NewOrderService(catalog CatalogStore, orders OrderStore, events EventPublisher) *OrderService {
	return &OrderService{
		catalog: catalog,
		orders:  orders,
		events:  events,
		now:     time.Now,
	}
}

// CreateOrder prices the cart and stores it as a pending order. Nothing is
// stored when any line fails to resolve.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	priced, err := PriceLines(ctx, s.catalog, in.Items, in.Discount)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		TableNo:    in.TableNo,
		CustomerID: in.CustomerID,
		Status:     models.OrderStatusPending,
		Items:      priced.Lines,
		Subtotal:   priced.Totals.Subtotal,
		TaxTotal:   priced.Totals.TaxTotal,
		GrandTotal: priced.Totals.GrandTotal,
		Discount:   in.Discount,
		Payments:   []models.Payment{},
		Notes:      in.Notes,
	}

	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"lines":       len(order.Items),
		"grand_total": order.GrandTotal,
	}).Info("order created")

	totals := priced.Totals
	s.publish(ctx, models.OrderEvent{
		Type:    models.EventOrderCreated,
		OrderID: order.ID,
		Status:  order.Status,
		TableNo: order.TableNo,
		Totals:  &totals,
	})

	return &CreateOrderResult{ID: order.ID, Totals: priced.Totals}, nil
}

// UpdateStatus overwrites the order's status. Any status may follow any other.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !models.IsValidID(orderID) {
		return ErrInvalidID
	}
	if !IsValidStatus(status) {
		return fmt.Errorf("status %q: %w", status, ErrInvalidInput)
	}

	if err := s.orders.SetOrderStatus(ctx, orderID, status); err != nil {
		return s.orderError(err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": orderID,
		"status":   status,
	}).Info("order status updated")

	s.publish(ctx, models.OrderEvent{
		Type:    models.EventOrderStatusUpdated,
		OrderID: orderID,
		Status:  status,
	})
	return nil
}

// AddPayment appends a payment to the order. It never checks the amount
// against the bill and never touches the status.
func (s *OrderService) AddPayment(ctx context.Context, orderID string, in PaymentInput) error {
	if !models.IsValidID(orderID) {
		return ErrInvalidID
	}

	method := in.Method
	if method == "" {
		method = models.PaymentMethodCash
	}
	if !IsValidPaymentMethod(method) {
		return fmt.Errorf("payment method %q: %w", method, ErrInvalidInput)
	}
	if in.Amount < 0 {
		return fmt.Errorf("payment amount %v: %w", in.Amount, ErrInvalidInput)
	}

	payment := &models.Payment{
		Method:    method,
		Amount:    in.Amount,
		Reference: in.Reference,
	}
	if err := s.orders.AppendPayment(ctx, orderID, payment); err != nil {
		return s.orderError(err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": orderID,
		"method":   payment.Method,
		"amount":   payment.Amount,
	}).Info("payment recorded")

	s.publish(ctx, models.OrderEvent{
		Type:    models.EventPaymentAdded,
		OrderID: orderID,
		Payment: payment,
	})
	return nil
}

// GetBill returns the stored snapshot exactly as it was priced.
func (s *OrderService) GetBill(ctx context.Context, orderID string) (*models.Order, error) {
	if !models.IsValidID(orderID) {
		return nil, ErrInvalidID
	}

	order, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		return nil, s.orderError(err)
	}
	return order, nil
}

// ListOrders returns every order, or only those with the given status.
func (s *OrderService) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	orders, err := s.orders.ListOrders(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// SalesReport sums grand totals over all orders, cancelled ones included.
// TODO: apply filter.DateFrom/DateTo once reporting by business day is agreed on.
func (s *OrderService) SalesReport(ctx context.Context, filter ReportFilter) (*SalesReport, error) {
	revenue, count, err := s.orders.SumGrandTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	if count == 0 {
		return &SalesReport{Revenue: 0, Orders: 0}, nil
	}
	return &SalesReport{Revenue: utils.RoundMoney(revenue), Orders: count}, nil
}

func (s *OrderService) orderError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}

func (s *OrderService) publish(ctx context.Context, event models.OrderEvent) {
	if s.events == nil {
		return
	}
	event.At = s.now()
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"order_id": event.OrderID,
			"event":    event.Type,
		}).Errorf("failed to publish order event: %v", err)
	}
}

func IsValidStatus(status string) bool {
	return slices.Contains(models.OrderStatuses, status)
}

func IsValidPaymentMethod(method string) bool {
	return slices.Contains([]string{
		models.PaymentMethodCash,
		models.PaymentMethodCard,
		models.PaymentMethodUPI,
		models.PaymentMethodWallet,
		models.PaymentMethodSplit,
		models.PaymentMethodOther,
	}, method)
}
