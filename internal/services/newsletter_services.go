package services

import (
	"context"
	"strings"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
)

type NewsletterService struct {
	Repo      NewsletterStore
	Validator EmailValidator
}

func NewNewsletterService(r NewsletterStore, v EmailValidator) *NewsletterService {
	return &NewsletterService{Repo: r, Validator: v}
}

// Subscribe is idempotent: re-subscribing an existing email returns
// the existing subscription rather than erroring or duplicating.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*model.Newsletter, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.Validator.Validate(ctx, email); err != nil {
		return nil, apperr.Invalid("invalid email address")
	}
	sub, err := s.Repo.SubscribeEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return sub, nil
}
