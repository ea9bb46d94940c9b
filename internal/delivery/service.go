package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rimrim990/delivery-service/internal/ids"
)

// Service implements the delivery-domain workflows on top of a Store. It
// consumes the identity produced by the auth core (a user email) and never
// calls back into it.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateShop registers a new shop.
func (s *Service) CreateShop(ctx context.Context, shop Shop) (Shop, error) {
	shop.Name = strings.TrimSpace(shop.Name)
	if shop.Name == "" {
		return Shop{}, fmt.Errorf("%w: shop name is required", ErrInvalidInput)
	}
	if shop.Category == "" {
		return Shop{}, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if shop.MinPrice < 0 {
		return Shop{}, fmt.Errorf("%w: minPrice must not be negative", ErrInvalidInput)
	}
	shop.ID = ids.New()
	shop.CreatedAt = s.now().UTC()
	if err := s.store.CreateShop(ctx, &shop); err != nil {
		return Shop{}, err
	}
	return shop, nil
}

// ListShops returns every registered shop.
func (s *Service) ListShops(ctx context.Context) ([]*Shop, error) {
	return s.store.ListShops(ctx)
}

// AddItem registers an item for sale by an existing shop.
func (s *Service) AddItem(ctx context.Context, item Item) (Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || len(item.Name) > 20 {
		return Item{}, fmt.Errorf("%w: item name length must be between 1 and 20", ErrInvalidInput)
	}
	if len(item.Description) > 100 {
		return Item{}, fmt.Errorf("%w: description length must be at most 100", ErrInvalidInput)
	}
	if item.Price < 0 {
		return Item{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if _, err := s.store.GetShop(ctx, item.ShopID); err != nil {
		return Item{}, err
	}
	item.ID = ids.New()
	item.CreatedAt = s.now().UTC()
	if err := s.store.CreateItem(ctx, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// ListItems returns the items of one shop.
func (s *Service) ListItems(ctx context.Context, shopID string) ([]*Item, error) {
	if _, err := s.store.GetShop(ctx, shopID); err != nil {
		return nil, err
	}
	return s.store.ListItems(ctx, shopID)
}

// PlaceOrder verifies the requested items, snapshots their prices, enforces
// the shop's minimum order total and creates the order together with its
// delivery record.
func (s *Service) PlaceOrder(ctx context.Context, userEmail string, req OrderRequest) (Order, error) {
	if strings.TrimSpace(userEmail) == "" {
		return Order{}, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return Order{}, fmt.Errorf("%w: order needs at least one item", ErrInvalidInput)
	}

	var (
		lines  []OrderItem
		total  int
		shopID string
	)
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return Order{}, ErrInvalidQuantity
		}
		item, err := s.store.GetItem(ctx, line.ItemID)
		if err != nil {
			return Order{}, err
		}
		if shopID == "" {
			shopID = item.ShopID
		} else if item.ShopID != shopID {
			return Order{}, ErrMixedShops
		}
		lines = append(lines, OrderItem{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: line.Quantity,
		})
		total += item.Price * line.Quantity
	}

	shop, err := s.store.GetShop(ctx, shopID)
	if err != nil {
		return Order{}, err
	}
	if total < shop.MinPrice {
		return Order{}, fmt.Errorf("%w: %d < %d", ErrBelowMinimumPrice, total, shop.MinPrice)
	}

	now := s.now().UTC()
	dlv := Delivery{
		ID:        ids.New(),
		Address:   req.Address,
		CreatedAt: now,
	}
	order := Order{
		ID:         ids.New(),
		UserEmail:  userEmail,
		Status:     StatusRequested,
		Items:      lines,
		TotalPrice: total,
		DeliveryID: dlv.ID,
		CreatedAt:  now,
	}
	if err := s.store.CreateOrder(ctx, &order, &dlv); err != nil {
		return Order{}, err
	}
	return order, nil
}

// GetOrder loads a single order.
func (s *Service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.store.GetOrder(ctx, id)
}
