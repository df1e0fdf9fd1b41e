package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Creation always starts at pending; further
// transitions are a schema capability, not exercised by the API.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderTransition reports whether an order may move from one
// status to the next: pending→processing→shipped→delivered, with
// cancellation allowed only from pending.
func ValidOrderTransition(from, to string) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusProcessing || to == OrderStatusCancelled
	case OrderStatusProcessing:
		return to == OrderStatusShipped
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	}
	return false
}

// ShippingDetails are the checkout form fields captured on the order.
type ShippingDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

// Order is immutable after creation except for status transitions.
// Total is computed once at placement and never recomputed.
type Order struct {
	OrderID   int64           `json:"id"`
	SessionID string          `json:"sessionId"`
	ShippingDetails
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
}

// OrderItem snapshots productId, quantity and the product price at
// order time, decoupled from later catalog price changes.
type OrderItem struct {
	OrderItemID int64           `json:"id"`
	OrderID     int64           `json:"orderId"`
	ProductID   int64           `json:"productId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// OrderItemWithProduct pairs the immutable snapshot with the product as
// it exists now, for display.
type OrderItemWithProduct struct {
	OrderItem
	Product Product `json:"product"`
}

// OrderWithItems is returned by GET /api/orders/:id.
type OrderWithItems struct {
	Order
	Items []OrderItemWithProduct `json:"items"`
}
