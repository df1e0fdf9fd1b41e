package services

import (
	"context"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
)

type WorkshopService struct {
	Repo WorkshopStore
}

func NewWorkshopService(r WorkshopStore) *WorkshopService {
	return &WorkshopService{Repo: r}
}

func (s *WorkshopService) List(ctx context.Context) ([]model.Workshop, error) {
	list, err := s.Repo.ListWorkshops(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

func (s *WorkshopService) Get(ctx context.Context, id int64) (*model.Workshop, error) {
	w, err := s.Repo.GetWorkshop(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if w == nil {
		return nil, apperr.NotFound("workshop not found")
	}
	return w, nil
}
