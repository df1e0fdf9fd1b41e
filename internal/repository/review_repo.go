package repository

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type ReviewRepository struct {
	DB *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) ListReviewsByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	query := `SELECT id, product_id, name, location, rating, comment, created_at FROM reviews WHERE product_id=$1 ORDER BY id`
	rows, err := r.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	defer rows.Close()

	list := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ReviewID, &rv.ProductID, &rv.Name, &rv.Location, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan review")
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

// CreateReview inserts the review and recomputes the product's rating
// (mean of all ratings, one decimal) and review count in one
// transaction.
func (r *ReviewRepository) CreateReview(ctx context.Context, rv *model.Review) (*model.Review, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO reviews (product_id, name, location, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, insert, rv.ProductID, rv.Name, rv.Location, rv.Rating, rv.Comment).
		Scan(&rv.ReviewID, &rv.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "insert review")
	}

	recompute := `
		UPDATE products SET
			rating = agg.avg_rating,
			review_count = agg.cnt
		FROM (
			SELECT ROUND(AVG(rating)::numeric, 1) AS avg_rating, COUNT(*) AS cnt
			FROM reviews WHERE product_id=$1
		) agg
		WHERE id=$1
	`
	if _, err := tx.Exec(ctx, recompute, rv.ProductID); err != nil {
		return nil, errors.Wrap(err, "recompute rating")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit tx")
	}
	return rv, nil
}
