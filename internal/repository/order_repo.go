package repository

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const orderColumns = `id, session_id, full_name, email, address, city, state, zip_code, country, total, status, created_at`

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder writes the order, its items and the cart clear in a
// single transaction so a failure leaves no partial state.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *model.Order, items []model.OrderItem) (*model.Order, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx)

	insertOrder := `
		INSERT INTO orders (session_id, full_name, email, address, city, state, zip_code, country, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, insertOrder,
		o.SessionID, o.FullName, o.Email, o.Address, o.City, o.State, o.ZipCode, o.Country,
		o.Total, o.Status,
	).Scan(&o.OrderID, &o.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "insert order")
	}

	insertItem := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
	`
	for _, it := range items {
		if _, err := tx.Exec(ctx, insertItem, o.OrderID, it.ProductID, it.Quantity, it.Price); err != nil {
			return nil, errors.Wrap(err, "insert order item")
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE session_id=$1`, o.SessionID); err != nil {
		return nil, errors.Wrap(err, "clear cart")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit tx")
	}
	return o, nil
}

// GetOrder returns the order and its items joined to the product as it
// exists now; price and quantity come from the immutable snapshot.
func (r *OrderRepository) GetOrder(ctx context.Context, id int64) (*model.OrderWithItems, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&o.OrderID, &o.SessionID, &o.FullName, &o.Email, &o.Address, &o.City,
		&o.State, &o.ZipCode, &o.Country, &o.Total, &o.Status, &o.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get order")
	}

	itemsQuery := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       p.id, p.name, p.description, p.price, p.image_url, p.category,
		       p.in_stock, p.featured, p.rating, p.review_count
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id=$1
		ORDER BY oi.id
	`
	rows, err := r.DB.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, errors.Wrap(err, "list order items")
	}
	defer rows.Close()

	out := &model.OrderWithItems{Order: o, Items: []model.OrderItemWithProduct{}}
	for rows.Next() {
		var it model.OrderItemWithProduct
		if err := rows.Scan(
			&it.OrderItemID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price,
			&it.Product.ProductID, &it.Product.Name, &it.Product.Description, &it.Product.Price,
			&it.Product.ImageURL, &it.Product.Category, &it.Product.InStock, &it.Product.Featured,
			&it.Product.Rating, &it.Product.ReviewCount,
		); err != nil {
			return nil, errors.Wrap(err, "scan order item")
		}
		out.Items = append(out.Items, it)
	}
	return out, rows.Err()
}

func (r *OrderRepository) ListOrdersBySession(ctx context.Context, sessionID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE session_id=$1 ORDER BY id DESC`
	rows, err := r.DB.Query(ctx, query, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	defer rows.Close()

	list := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.OrderID, &o.SessionID, &o.FullName, &o.Email, &o.Address, &o.City,
			&o.State, &o.ZipCode, &o.Country, &o.Total, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan order")
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
