// Package memstore is the in-memory storage backend. It implements
// every storage interface in internal/services behind one mutex, which
// also makes the cart merge and order placement atomic.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu sync.Mutex

	products    map[int64]model.Product
	reviews     map[int64]model.Review
	cartItems   map[int64]model.CartItem
	workshops   map[int64]model.Workshop
	orders      map[int64]model.Order
	orderItems  map[int64]model.OrderItem
	newsletters map[int64]model.Newsletter
	contacts    map[int64]model.Contact

	nextProductID    int64
	nextReviewID     int64
	nextCartItemID   int64
	nextWorkshopID   int64
	nextOrderID      int64
	nextOrderItemID  int64
	nextNewsletterID int64
	nextContactID    int64
}

func New() *Store {
	return &Store{
		products:    make(map[int64]model.Product),
		reviews:     make(map[int64]model.Review),
		cartItems:   make(map[int64]model.CartItem),
		workshops:   make(map[int64]model.Workshop),
		orders:      make(map[int64]model.Order),
		orderItems:  make(map[int64]model.OrderItem),
		newsletters: make(map[int64]model.Newsletter),
		contacts:    make(map[int64]model.Contact),

		nextProductID:    1,
		nextReviewID:     1,
		nextCartItemID:   1,
		nextWorkshopID:   1,
		nextOrderID:      1,
		nextOrderItemID:  1,
		nextNewsletterID: 1,
		nextContactID:    1,
	}
}

// ---- products

func (s *Store) ListProducts(_ context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productsWhere(func(model.Product) bool { return true }), nil
}

func (s *Store) ListFeaturedProducts(_ context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productsWhere(func(p model.Product) bool { return p.Featured }), nil
}

func (s *Store) ListProductsByCategory(_ context.Context, category string) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productsWhere(func(p model.Product) bool { return p.Category == category }), nil
}

func (s *Store) SearchProducts(_ context.Context, query string) ([]model.Product, error) {
	q := strings.ToLower(query)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productsWhere(func(p model.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}), nil
}

func (s *Store) GetProduct(_ context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *Store) CreateProduct(_ context.Context, p *model.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ProductID = s.nextProductID
	s.nextProductID++
	s.products[p.ProductID] = *p
	return p.ProductID, nil
}

// SetProductPrice changes a catalog price in place. Used to verify
// that placed orders keep their price snapshots.
func (s *Store) SetProductPrice(id int64, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		p.Price = price
		s.products[id] = p
	}
}

func (s *Store) productsWhere(keep func(model.Product) bool) []model.Product {
	out := []model.Product{}
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// ---- reviews

func (s *Store) ListReviewsByProduct(_ context.Context, productID int64) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReviewID < out[j].ReviewID })
	return out, nil
}

func (s *Store) CreateReview(_ context.Context, r *model.Review) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r.ReviewID = s.nextReviewID
	s.nextReviewID++
	r.CreatedAt = &now
	s.reviews[r.ReviewID] = *r

	// recompute the product's derived rating fields from all reviews
	var sum, n int64
	for _, rv := range s.reviews {
		if rv.ProductID == r.ProductID {
			sum += int64(rv.Rating)
			n++
		}
	}
	if p, ok := s.products[r.ProductID]; ok && n > 0 {
		p.Rating = decimal.NewFromInt(sum).Div(decimal.NewFromInt(n)).Round(1)
		p.ReviewCount = int(n)
		s.products[r.ProductID] = p
	}

	created := *r
	return &created, nil
}

// ---- cart

func (s *Store) ListCartItems(_ context.Context, sessionID string) ([]model.CartItemWithProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.CartItemWithProduct{}
	for _, it := range s.cartItems {
		if it.SessionID != sessionID {
			continue
		}
		// skip lines whose product no longer exists
		p, ok := s.products[it.ProductID]
		if !ok {
			continue
		}
		out = append(out, model.CartItemWithProduct{CartItem: it, Product: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CartItemID < out[j].CartItemID })
	return out, nil
}

func (s *Store) UpsertCartItem(_ context.Context, sessionID string, productID int64, qty int) (*model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, it := range s.cartItems {
		if it.SessionID == sessionID && it.ProductID == productID {
			it.Quantity += qty
			s.cartItems[id] = it
			return &it, nil
		}
	}

	now := time.Now()
	it := model.CartItem{
		CartItemID: s.nextCartItemID,
		SessionID:  sessionID,
		ProductID:  productID,
		Quantity:   qty,
		CreatedAt:  &now,
	}
	s.nextCartItemID++
	s.cartItems[it.CartItemID] = it
	return &it, nil
}

func (s *Store) SetCartItemQuantity(_ context.Context, id int64, qty int) (*model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.cartItems[id]
	if !ok {
		return nil, nil
	}
	it.Quantity = qty
	s.cartItems[id] = it
	return &it, nil
}

func (s *Store) DeleteCartItem(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartItems[id]; !ok {
		return false, nil
	}
	delete(s.cartItems, id)
	return true, nil
}

func (s *Store) ClearCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked(sessionID)
	return nil
}

func (s *Store) clearCartLocked(sessionID string) {
	for id, it := range s.cartItems {
		if it.SessionID == sessionID {
			delete(s.cartItems, id)
		}
	}
}

// ---- orders

func (s *Store) CreateOrder(_ context.Context, o *model.Order, items []model.OrderItem) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	o.OrderID = s.nextOrderID
	s.nextOrderID++
	o.CreatedAt = &now
	s.orders[o.OrderID] = *o

	for _, it := range items {
		it.OrderItemID = s.nextOrderItemID
		s.nextOrderItemID++
		it.OrderID = o.OrderID
		s.orderItems[it.OrderItemID] = it
	}

	s.clearCartLocked(o.SessionID)

	created := *o
	return &created, nil
}

func (s *Store) GetOrder(_ context.Context, id int64) (*model.OrderWithItems, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	out := &model.OrderWithItems{Order: o, Items: []model.OrderItemWithProduct{}}
	for _, it := range s.orderItems {
		if it.OrderID != id {
			continue
		}
		p, ok := s.products[it.ProductID]
		if !ok {
			continue
		}
		out.Items = append(out.Items, model.OrderItemWithProduct{OrderItem: it, Product: p})
	}
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].OrderItemID < out.Items[j].OrderItemID })
	return out, nil
}

func (s *Store) ListOrdersBySession(_ context.Context, sessionID string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Order{}
	for _, o := range s.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID > out[j].OrderID })
	return out, nil
}

// ---- workshops

func (s *Store) ListWorkshops(_ context.Context) ([]model.Workshop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Workshop{}
	for _, w := range s.workshops {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WorkshopID < out[j].WorkshopID })
	return out, nil
}

func (s *Store) GetWorkshop(_ context.Context, id int64) (*model.Workshop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.workshops[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (s *Store) CreateWorkshop(_ context.Context, w *model.Workshop) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.WorkshopID = s.nextWorkshopID
	s.nextWorkshopID++
	s.workshops[w.WorkshopID] = *w
	return w.WorkshopID, nil
}

// ---- newsletter / contact

func (s *Store) SubscribeEmail(_ context.Context, email string) (*model.Newsletter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.newsletters {
		if sub.Email == email {
			existing := sub
			return &existing, nil
		}
	}
	now := time.Now()
	sub := model.Newsletter{
		NewsletterID: s.nextNewsletterID,
		Email:        email,
		CreatedAt:    &now,
	}
	s.nextNewsletterID++
	s.newsletters[sub.NewsletterID] = sub
	return &sub, nil
}

func (s *Store) CreateContact(_ context.Context, c *model.Contact) (*model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	c.ContactID = s.nextContactID
	s.nextContactID++
	c.CreatedAt = &now
	s.contacts[c.ContactID] = *c
	created := *c
	return &created, nil
}
