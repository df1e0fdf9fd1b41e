package services

import (
	"context"
	"strings"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
)

type OrderService struct {
	Repo OrderStore
	Cart *CartService
}

func NewOrderService(r OrderStore, cart *CartService) *OrderService {
	return &OrderService{Repo: r, Cart: cart}
}

// Place converts the session's current cart into an immutable order.
// The total is the cart total (subtotal + shipping) at this moment and
// each order item snapshots the current product price. Order, items
// and cart clearing are one atomic unit in the storage layer; on any
// failure nothing is committed.
func (s *OrderService) Place(ctx context.Context, sessionID string, shipping model.ShippingDetails) (*model.Order, error) {
	if err := validateShipping(&shipping); err != nil {
		return nil, err
	}

	cart, err := s.Cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.EmptyCart("cart is empty")
	}

	order := &model.Order{
		SessionID:       sessionID,
		ShippingDetails: shipping,
		Total:           cart.Total,
		Status:          model.OrderStatusPending,
	}
	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Product.Price,
		})
	}

	created, err := s.Repo.CreateOrder(ctx, order, items)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, orderID int64) (*model.OrderWithItems, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	return o, nil
}

func (s *OrderService) ListBySession(ctx context.Context, sessionID string) ([]model.Order, error) {
	list, err := s.Repo.ListOrdersBySession(ctx, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if list == nil {
		list = []model.Order{}
	}
	return list, nil
}

func validateShipping(d *model.ShippingDetails) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"fullName", &d.FullName},
		{"email", &d.Email},
		{"address", &d.Address},
		{"city", &d.City},
		{"state", &d.State},
		{"zipCode", &d.ZipCode},
		{"country", &d.Country},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return apperr.Invalid(f.name + " is required")
		}
	}
	return nil
}
