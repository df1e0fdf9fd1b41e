package services

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
)

type CartService struct {
	Repo     CartStore
	Products ProductStore
	Shipping ShippingRule
}

func NewCartService(r CartStore, pr ProductStore, shipping ShippingRule) *CartService {
	return &CartService{Repo: r, Products: pr, Shipping: shipping}
}

// Get returns the session's cart lines joined with current product
// data plus the derived item count, subtotal, shipping and total.
func (s *CartService) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	items, err := s.Repo.ListCartItems(ctx, sessionID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if items == nil {
		items = []model.CartItemWithProduct{}
	}

	resp := &model.CartResponse{Items: items}
	for _, it := range items {
		resp.ItemCount += it.Quantity
		resp.Subtotal = resp.Subtotal.Add(it.Subtotal())
	}
	// an empty cart has no shipping line
	if len(items) > 0 {
		resp.Shipping = s.Shipping.FeeFor(resp.Subtotal)
	}
	resp.Total = resp.Subtotal.Add(resp.Shipping)
	return resp, nil
}

// Add puts qty of a product into the session's cart, merging into the
// existing line if one exists. qty defaults to 1.
func (s *CartService) Add(ctx context.Context, sessionID string, productID int64, qty int) (*model.CartItem, error) {
	if qty < 0 {
		return nil, apperr.Invalid("quantity must be a positive integer")
	}
	if qty == 0 {
		qty = 1
	}

	p, err := s.Products.GetProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}

	item, err := s.Repo.UpsertCartItem(ctx, sessionID, productID, qty)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return item, nil
}

// UpdateQuantity replaces (not adds to) a cart line's quantity.
func (s *CartService) UpdateQuantity(ctx context.Context, cartItemID int64, qty int) (*model.CartItem, error) {
	if qty <= 0 {
		return nil, apperr.Invalid("quantity must be a positive integer")
	}
	item, err := s.Repo.SetCartItemQuantity(ctx, cartItemID, qty)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("cart item not found")
	}
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, cartItemID int64) error {
	deleted, err := s.Repo.DeleteCartItem(ctx, cartItemID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("cart item not found")
	}
	return nil
}

// Clear empties the session's cart; clearing an already empty cart is
// a no-op.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.Repo.ClearCart(ctx, sessionID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
