package repository

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type NewsletterRepository struct {
	DB *pgxpool.Pool
}

func NewNewsletterRepository(db *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{DB: db}
}

// SubscribeEmail upserts on the unique email column; re-subscribing
// returns the existing row unchanged.
func (r *NewsletterRepository) SubscribeEmail(ctx context.Context, email string) (*model.Newsletter, error) {
	query := `
		INSERT INTO newsletters (email, created_at)
		VALUES ($1, now())
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, created_at
	`
	var sub model.Newsletter
	if err := r.DB.QueryRow(ctx, query, email).Scan(&sub.NewsletterID, &sub.Email, &sub.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "subscribe email")
	}
	return &sub, nil
}
