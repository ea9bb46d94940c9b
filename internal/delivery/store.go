package delivery

import "context"

// Store describes persistence operations required by the delivery domain.
type Store interface {
	CreateShop(ctx context.Context, shop *Shop) error
	GetShop(ctx context.Context, id string) (*Shop, error)
	ListShops(ctx context.Context) ([]*Shop, error)

	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, id string) (*Item, error)
	ListItems(ctx context.Context, shopID string) ([]*Item, error)

	// CreateOrder persists the order and its delivery record atomically.
	CreateOrder(ctx context.Context, order *Order, dlv *Delivery) error
	GetOrder(ctx context.Context, id string) (*Order, error)
}
