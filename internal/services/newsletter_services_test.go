package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/memstore"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/ThanhAnUp/ArtisanHaven/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ns := services.NewNewsletterService(memstore.New(), services.NewLocalValidator())

	first, err := ns.Subscribe(ctx, "mai@example.com")
	require.NoError(t, err)

	// same address, different case and whitespace
	second, err := ns.Subscribe(ctx, "  Mai@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, first.NewsletterID, second.NewsletterID)
	assert.Equal(t, "mai@example.com", second.Email)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	ctx := context.Background()
	ns := services.NewNewsletterService(memstore.New(), services.NewLocalValidator())

	for _, email := range []string{"", "not-an-email", "a b@example.com", "@example.com"} {
		_, err := ns.Subscribe(ctx, email)
		require.Error(t, err, "email %q", email)
		assert.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))
	}
}

func TestContactSubmit(t *testing.T) {
	ctx := context.Background()
	cs := services.NewContactService(memstore.New())

	sub, err := cs.Submit(ctx, &model.Contact{
		Name:    "  Hoa  ",
		Email:   "hoa@example.com",
		Subject: "Workshop question",
		Message: "Is the pottery workshop suitable for beginners?",
	})
	require.NoError(t, err)
	assert.NotZero(t, sub.ContactID)
	assert.Equal(t, "Hoa", sub.Name)
	assert.NotNil(t, sub.CreatedAt)
}

func TestContactSubmitValidation(t *testing.T) {
	ctx := context.Background()
	cs := services.NewContactService(memstore.New())

	_, err := cs.Submit(ctx, &model.Contact{
		Name:    "Hoa",
		Email:   "hoa@example.com",
		Subject: "  ",
		Message: "hello",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))
}

func TestWorkshopGet(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	ws := services.NewWorkshopService(store)

	id, err := store.CreateWorkshop(ctx, &model.Workshop{
		Title:          "Wheel Throwing Basics",
		Description:    "Two hours at the wheel",
		Category:       model.CategoryCeramics,
		Date:           time.Date(2026, 10, 3, 14, 0, 0, 0, time.UTC),
		Price:          decimal.NewFromInt(65),
		SpotsAvailable: 8,
	})
	require.NoError(t, err)

	w, err := ws.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Wheel Throwing Basics", w.Title)

	_, err = ws.Get(ctx, 999)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	list, err := ws.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
