package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/yeremiapane/bill-printing-app/models"
)

type fakeCatalog struct {
	items   map[string]models.MenuItem
	lookups []string
	err     error
}

func newFakeCatalog(items ...models.MenuItem) *fakeCatalog {
	c := &fakeCatalog{items: map[string]models.MenuItem{}}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

func (c *fakeCatalog) FindMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	c.lookups = append(c.lookups, id)
	if c.err != nil {
		return nil, c.err
	}
	it, ok := c.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[string]*models.Order
	order  []string
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]*models.Order{}}
}

func (s *fakeOrderStore) InsertOrder(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = uuid.NewString()
	stored := *order
	s.orders[order.ID] = &stored
	s.order = append(s.order, order.ID)
	return nil
}

func (s *fakeOrderStore) FindOrder(ctx context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *fakeOrderStore) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, id := range s.order {
		if status == "" || s.orders[id].Status == status {
			out = append(out, *s.orders[id])
		}
	}
	return out, nil
}

func (s *fakeOrderStore) SetOrderStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

func (s *fakeOrderStore) AppendPayment(ctx context.Context, orderID string, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	o.Payments = append(o.Payments, *payment)
	return nil
}

func (s *fakeOrderStore) SumGrandTotals(ctx context.Context) (float64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var revenue float64
	for _, o := range s.orders {
		revenue += o.GrandTotal
	}
	return revenue, int64(len(s.orders)), nil
}

type recordingPublisher struct {
	events []models.OrderEvent
	err    error
}

func (p *recordingPublisher) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	p.events = append(p.events, event)
	return p.err
}

var errBoom = errors.New("boom")
