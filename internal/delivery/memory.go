package delivery

import (
	"context"
	"sync"
)

var _ Store = (*InMemory)(nil)

// InMemory implements Store with in-process concurrency safety. It backs the
// test suites and local development without a database.
type InMemory struct {
	mu     sync.RWMutex
	shops  map[string]*Shop
	items  map[string]*Item
	orders map[string]*Order
	dlvs   map[string]*Delivery
}

// NewInMemory creates an empty store.
func NewInMemory() *InMemory {
	return &InMemory{
		shops:  make(map[string]*Shop),
		items:  make(map[string]*Item),
		orders: make(map[string]*Order),
		dlvs:   make(map[string]*Delivery),
	}
}

func (s *InMemory) CreateShop(ctx context.Context, shop *Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *shop
	s.shops[shop.ID] = &copied
	return nil
}

func (s *InMemory) GetShop(ctx context.Context, id string) (*Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shop, ok := s.shops[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *shop
	return &copied, nil
}

func (s *InMemory) ListShops(ctx context.Context) ([]*Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		copied := *shop
		out = append(out, &copied)
	}
	return out, nil
}

func (s *InMemory) CreateItem(ctx context.Context, item *Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *InMemory) GetItem(ctx context.Context, id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *InMemory) ListItems(ctx context.Context, shopID string) ([]*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Item
	for _, item := range s.items {
		if item.ShopID == shopID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *InMemory) CreateOrder(ctx context.Context, order *Order, dlv *Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copiedOrder := *order
	copiedOrder.Items = append([]OrderItem(nil), order.Items...)
	copiedDlv := *dlv
	s.orders[order.ID] = &copiedOrder
	s.dlvs[dlv.ID] = &copiedDlv
	return nil
}

func (s *InMemory) GetOrder(ctx context.Context, id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *order
	copied.Items = append([]OrderItem(nil), order.Items...)
	return &copied, nil
}
