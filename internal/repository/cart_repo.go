package repository

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// ListCartItems joins cart lines with their product at current catalog
// values. The inner join drops lines whose product no longer exists.
func (r *CartRepository) ListCartItems(ctx context.Context, sessionID string) ([]model.CartItemWithProduct, error) {
	query := `
		SELECT ci.id, ci.session_id, ci.product_id, ci.quantity, ci.created_at,
		       p.id, p.name, p.description, p.price, p.image_url, p.category,
		       p.in_stock, p.featured, p.rating, p.review_count
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.session_id=$1
		ORDER BY ci.id
	`
	rows, err := r.DB.Query(ctx, query, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "list cart items")
	}
	defer rows.Close()

	items := []model.CartItemWithProduct{}
	for rows.Next() {
		var it model.CartItemWithProduct
		if err := rows.Scan(
			&it.CartItemID, &it.SessionID, &it.ProductID, &it.Quantity, &it.CreatedAt,
			&it.Product.ProductID, &it.Product.Name, &it.Product.Description, &it.Product.Price,
			&it.Product.ImageURL, &it.Product.Category, &it.Product.InStock, &it.Product.Featured,
			&it.Product.Rating, &it.Product.ReviewCount,
		); err != nil {
			return nil, errors.Wrap(err, "scan cart item")
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpsertCartItem relies on UNIQUE(session_id, product_id) so that
// concurrent adds for the same pair serialize in the database instead
// of racing on a read-then-write.
func (r *CartRepository) UpsertCartItem(ctx context.Context, sessionID string, productID int64, qty int) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (session_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, session_id, product_id, quantity, created_at
	`
	var it model.CartItem
	err := r.DB.QueryRow(ctx, query, sessionID, productID, qty).
		Scan(&it.CartItemID, &it.SessionID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert cart item")
	}
	return &it, nil
}

func (r *CartRepository) SetCartItemQuantity(ctx context.Context, id int64, qty int) (*model.CartItem, error) {
	query := `
		UPDATE cart_items SET quantity=$1 WHERE id=$2
		RETURNING id, session_id, product_id, quantity, created_at
	`
	var it model.CartItem
	err := r.DB.QueryRow(ctx, query, qty, id).
		Scan(&it.CartItemID, &it.SessionID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "update cart item quantity")
	}
	return &it, nil
}

func (r *CartRepository) DeleteCartItem(ctx context.Context, id int64) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, id)
	if err != nil {
		return false, errors.Wrap(err, "delete cart item")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CartRepository) ClearCart(ctx context.Context, sessionID string) error {
	if _, err := r.DB.Exec(ctx, `DELETE FROM cart_items WHERE session_id=$1`, sessionID); err != nil {
		return errors.Wrap(err, "clear cart")
	}
	return nil
}
