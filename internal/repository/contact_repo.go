package repository

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type ContactRepository struct {
	DB *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) CreateContact(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(ctx, query, c.Name, c.Email, c.Subject, c.Message).Scan(&c.ContactID, &c.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "create contact")
	}
	return c, nil
}
