package services_test

import (
	"context"
	"testing"

	"github.com/ThanhAnUp/ArtisanHaven/internal/apperr"
	"github.com/ThanhAnUp/ArtisanHaven/internal/memstore"
	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/ThanhAnUp/ArtisanHaven/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProducts(t *testing.T) (*services.ProductService, *memstore.Store) {
	store := memstore.New()
	return services.NewProductService(store), store
}

func TestProductGet(t *testing.T) {
	ctx := context.Background()
	ps, store := setupProducts(t)
	pid := addProduct(t, store, "bowl", "20")

	p, err := ps.Get(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, "bowl", p.Name)

	_, err = ps.Get(ctx, 999)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestProductListByCategory(t *testing.T) {
	ctx := context.Background()
	ps, store := setupProducts(t)
	_, err := store.CreateProduct(ctx, &model.Product{
		Name:     "silk scarf",
		Price:    decimal.NewFromInt(45),
		Category: model.CategoryTextiles,
		InStock:  true,
	})
	require.NoError(t, err)
	addProduct(t, store, "bowl", "20") // ceramics

	textiles, err := ps.ListByCategory(ctx, model.CategoryTextiles)
	require.NoError(t, err)
	require.Len(t, textiles, 1)
	assert.Equal(t, "silk scarf", textiles[0].Name)

	// a category outside the known set is an empty list, not an error
	unknown, err := ps.ListByCategory(ctx, "furniture")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestProductListFeatured(t *testing.T) {
	ctx := context.Background()
	ps, store := setupProducts(t)
	_, err := store.CreateProduct(ctx, &model.Product{
		Name:     "celadon vase",
		Price:    decimal.NewFromInt(60),
		Category: model.CategoryCeramics,
		Featured: true,
		InStock:  true,
	})
	require.NoError(t, err)
	addProduct(t, store, "bowl", "20")

	featured, err := ps.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "celadon vase", featured[0].Name)
}

func TestProductSearch(t *testing.T) {
	ctx := context.Background()
	ps, store := setupProducts(t)
	addProduct(t, store, "Celadon Bowl", "20")
	addProduct(t, store, "Rattan Basket", "18")

	hits, err := ps.Search(ctx, "celadon")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Celadon Bowl", hits[0].Name)

	// matches descriptions too (addProduct fills "<name> description")
	hits, err = ps.Search(ctx, "BASKET DESC")
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	none, err := ps.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = ps.Search(ctx, "   ")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))
}
