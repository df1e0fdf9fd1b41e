package services

import (
	"context"
	"strings"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
)

type ReviewService struct {
	Repo     ReviewStore
	Products ProductStore
}

func NewReviewService(r ReviewStore, pr ProductStore) *ReviewService {
	return &ReviewService{Repo: r, Products: pr}
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	list, err := s.Repo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

// Add validates and stores a review. The storage layer recomputes the
// product's rating and review count in the same atomic unit, so the
// derived fields never drift from the review set.
func (s *ReviewService) Add(ctx context.Context, productID int64, rv *model.Review) (*model.Review, error) {
	rv.Name = strings.TrimSpace(rv.Name)
	rv.Comment = strings.TrimSpace(rv.Comment)
	if rv.Name == "" {
		return nil, apperr.Invalid("name is required")
	}
	if rv.Comment == "" {
		return nil, apperr.Invalid("comment is required")
	}
	if rv.Rating < 1 || rv.Rating > 5 {
		return nil, apperr.Invalid("rating must be an integer between 1 and 5")
	}

	p, err := s.Products.GetProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}

	rv.ProductID = productID
	created, err := s.Repo.CreateReview(ctx, rv)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return created, nil
}
