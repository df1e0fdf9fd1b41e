package repository

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const productColumns = `id, name, description, price, image_url, category, in_stock, featured, rating, review_count`

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepository) ListFeaturedProducts(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE featured ORDER BY id`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepository) ListProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category=$1 ORDER BY id`
	return r.queryProducts(ctx, query, category)
}

func (r *ProductRepository) SearchProducts(ctx context.Context, q string) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY id
	`
	return r.queryProducts(ctx, query, q)
}

func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	var p model.Product
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&p.ProductID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Category, &p.InStock, &p.Featured, &p.Rating, &p.ReviewCount,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return &p, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	query := `
		INSERT INTO products (name, description, price, image_url, category, in_stock, featured, rating, review_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRow(ctx, query,
		p.Name, p.Description, p.Price, p.ImageURL, p.Category,
		p.InStock, p.Featured, p.Rating, p.ReviewCount,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "create product")
	}
	p.ProductID = id
	return id, nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	defer rows.Close()

	list := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ProductID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.Category, &p.InStock, &p.Featured, &p.Rating, &p.ReviewCount,
		); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
