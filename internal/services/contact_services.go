package services

import (
	"context"
	"strings"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
)

type ContactService struct {
	Repo ContactStore
}

func NewContactService(r ContactStore) *ContactService {
	return &ContactService{Repo: r}
}

// Submit appends a contact form submission. There is no downstream
// processing.
func (s *ContactService) Submit(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
	if c.Name == "" || c.Email == "" || c.Subject == "" || c.Message == "" {
		return nil, apperr.Invalid("name, email, subject and message are required")
	}
	created, err := s.Repo.CreateContact(ctx, c)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return created, nil
}
