package repository

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const workshopColumns = `id, title, description, image_url, category, date, price, spots_available`

type WorkshopRepository struct {
	DB *pgxpool.Pool
}

func NewWorkshopRepository(db *pgxpool.Pool) *WorkshopRepository {
	return &WorkshopRepository{DB: db}
}

func (r *WorkshopRepository) ListWorkshops(ctx context.Context) ([]model.Workshop, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+workshopColumns+` FROM workshops ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list workshops")
	}
	defer rows.Close()

	list := []model.Workshop{}
	for rows.Next() {
		var w model.Workshop
		if err := rows.Scan(&w.WorkshopID, &w.Title, &w.Description, &w.ImageURL, &w.Category, &w.Date, &w.Price, &w.SpotsAvailable); err != nil {
			return nil, errors.Wrap(err, "scan workshop")
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func (r *WorkshopRepository) GetWorkshop(ctx context.Context, id int64) (*model.Workshop, error) {
	var w model.Workshop
	err := r.DB.QueryRow(ctx, `SELECT `+workshopColumns+` FROM workshops WHERE id=$1`, id).
		Scan(&w.WorkshopID, &w.Title, &w.Description, &w.ImageURL, &w.Category, &w.Date, &w.Price, &w.SpotsAvailable)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get workshop")
	}
	return &w, nil
}

func (r *WorkshopRepository) CreateWorkshop(ctx context.Context, w *model.Workshop) (int64, error) {
	var id int64
	query := `
		INSERT INTO workshops (title, description, image_url, category, date, price, spots_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRow(ctx, query, w.Title, w.Description, w.ImageURL, w.Category, w.Date, w.Price, w.SpotsAvailable).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "create workshop")
	}
	w.WorkshopID = id
	return id, nil
}
