package services

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/shopspring/decimal"
)

// Storage interfaces consumed by the services. Two backends implement
// them: internal/repository (PostgreSQL) and internal/memstore. A row
// that does not exist is reported as (nil, nil); errors are reserved
// for storage failures.

type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListFeaturedProducts(ctx context.Context) ([]model.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) (int64, error)
}

type ReviewStore interface {
	ListReviewsByProduct(ctx context.Context, productID int64) ([]model.Review, error)

	// CreateReview inserts the review and, in the same atomic unit,
	// recomputes the product's rating (mean of all ratings, one
	// decimal) and review count.
	CreateReview(ctx context.Context, r *model.Review) (*model.Review, error)
}

type CartStore interface {
	ListCartItems(ctx context.Context, sessionID string) ([]model.CartItemWithProduct, error)

	// UpsertCartItem adds qty to the existing (session, product) row or
	// inserts a new one, atomically per pair.
	UpsertCartItem(ctx context.Context, sessionID string, productID int64, qty int) (*model.CartItem, error)
	SetCartItemQuantity(ctx context.Context, id int64, qty int) (*model.CartItem, error)
	DeleteCartItem(ctx context.Context, id int64) (bool, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type OrderStore interface {
	// CreateOrder persists the order with its items and clears the
	// session's cart as one atomic unit.
	CreateOrder(ctx context.Context, o *model.Order, items []model.OrderItem) (*model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.OrderWithItems, error)
	ListOrdersBySession(ctx context.Context, sessionID string) ([]model.Order, error)
}

type WorkshopStore interface {
	ListWorkshops(ctx context.Context) ([]model.Workshop, error)
	GetWorkshop(ctx context.Context, id int64) (*model.Workshop, error)
	CreateWorkshop(ctx context.Context, w *model.Workshop) (int64, error)
}

type NewsletterStore interface {
	// SubscribeEmail is an idempotent upsert: an already subscribed
	// email returns the existing row.
	SubscribeEmail(ctx context.Context, email string) (*model.Newsletter, error)
}

type ContactStore interface {
	CreateContact(ctx context.Context, c *model.Contact) (*model.Contact, error)
}

// ShippingRule carries the configured flat fee and free-shipping
// threshold (currency-agnostic, see internal/config).
type ShippingRule struct {
	Fee           decimal.Decimal
	FreeThreshold decimal.Decimal
}

// FeeFor returns the shipping surcharge for a subtotal: zero at or
// above the threshold (inclusive), the flat fee below it.
func (r ShippingRule) FeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(r.FreeThreshold) {
		return decimal.Zero
	}
	return r.Fee
}
