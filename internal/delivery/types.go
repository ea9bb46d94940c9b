package delivery

import "time"

// Address is a drop-off location for a delivery or the location of a shop.
type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	ZipCode string `json:"zipCode"`
}

// Category classifies shops.
type Category string

const (
	CategoryChicken Category = "CHICKEN"
	CategoryPizza   Category = "PIZZA"
	CategoryKorean  Category = "KOREAN"
	CategoryChinese Category = "CHINESE"
	CategoryDessert Category = "DESSERT"
)

// Shop is a store that sells items. MinPrice is the minimum order total the
// shop accepts.
type Shop struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	MinPrice    int       `json:"minPrice"`
	Address     Address   `json:"address"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Item is a product sold by a shop.
type Item struct {
	ID          string    `json:"id"`
	ShopID      string    `json:"shop_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int       `json:"price"`
	Recommended bool      `json:"recommended"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderStatus tracks the order lifecycle.
type OrderStatus string

const (
	StatusRequested       OrderStatus = "REQUESTED"
	StatusProgress        OrderStatus = "PROGRESS"
	StatusCanceled        OrderStatus = "CANCELED"
	StatusCompleted       OrderStatus = "COMPLETED"
	StatusRefundRequested OrderStatus = "REFUND_REQUESTED"
	StatusRefundCompleted OrderStatus = "REFUND_COMPLETED"
)

// OrderItem is a line of an order. Name and Price are snapshots taken at order
// time; later item edits do not rewrite history.
type OrderItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order is a placed order, always created together with its delivery record.
type Order struct {
	ID         string      `json:"id"`
	UserEmail  string      `json:"user_email"`
	Status     OrderStatus `json:"status"`
	Items      []OrderItem `json:"items"`
	TotalPrice int         `json:"total_price"`
	DeliveryID string      `json:"delivery_id"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Delivery is the drop-off record attached to an order.
type Delivery struct {
	ID        string    `json:"id"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// OrderRequest is the input to PlaceOrder.
type OrderRequest struct {
	Address Address
	Items   []OrderItemRequest
}
