package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (session, product) line. At most one row exists per
// pair; repeated adds merge into the existing row's quantity.
type CartItem struct {
	CartItemID int64      `json:"id"`
	SessionID  string     `json:"sessionId"`
	ProductID  int64      `json:"productId"`
	Quantity   int        `json:"quantity"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// CartItemWithProduct joins a cart line with its product at current
// catalog values. The cart is not price-locked; only placed orders
// snapshot price.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}

// Subtotal is the current product price times quantity.
func (c CartItemWithProduct) Subtotal() decimal.Decimal {
	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// CartResponse is returned by GET /api/cart. The derived values are
// computed from the listed items, never stored.
type CartResponse struct {
	Items     []CartItemWithProduct `json:"items"`
	ItemCount int                   `json:"itemCount"`
	Subtotal  decimal.Decimal       `json:"subtotal"`
	Shipping  decimal.Decimal       `json:"shipping"`
	Total     decimal.Decimal       `json:"total"`
}
