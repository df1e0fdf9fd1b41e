package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

// LocalValidator does purely syntactic validation, no external lookups.
type LocalValidator struct{}

func NewLocalValidator() *LocalValidator {
	return &LocalValidator{}
}

func (v *LocalValidator) Validate(_ context.Context, email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return err
	}
	if addr.Address != email || !strings.Contains(email, "@") {
		return errors.New("invalid email address")
	}
	return nil
}
