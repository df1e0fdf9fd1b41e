package services

import (
	"context"
	"strings"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
)

type ProductService struct {
	Repo ProductStore
}

func NewProductService(r ProductStore) *ProductService {
	return &ProductService{Repo: r}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	list, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

func (s *ProductService) ListFeatured(ctx context.Context) ([]model.Product, error) {
	list, err := s.Repo.ListFeaturedProducts(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

// ListByCategory returns an empty list for a category outside the
// known set rather than erroring.
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if !model.ValidCategory(category) {
		return []model.Product{}, nil
	}
	list, err := s.Repo.ListProductsByCategory(ctx, category)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

func (s *ProductService) Search(ctx context.Context, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Invalid("search query is required")
	}
	list, err := s.Repo.SearchProducts(ctx, query)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}
