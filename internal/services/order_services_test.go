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

func validShipping() model.ShippingDetails {
	return model.ShippingDetails{
		FullName: "Linh Tran",
		Email:    "linh@example.com",
		Address:  "12 Hang Gai",
		City:     "Hanoi",
		State:    "HN",
		ZipCode:  "100000",
		Country:  "Vietnam",
	}
}

func setupOrder(t *testing.T) (*services.OrderService, *services.CartService, *memstore.Store) {
	store := memstore.New()
	cart := services.NewCartService(store, store, testShipping())
	return services.NewOrderService(store, cart), cart, store
}

func TestPlaceOrderTotals(t *testing.T) {
	ctx := context.Background()
	os, cs, store := setupOrder(t)
	p1 := addProduct(t, store, "cup", "10")
	p2 := addProduct(t, store, "bowl", "20")

	_, err := cs.Add(ctx, "s1", p1, 2)
	require.NoError(t, err)
	_, err = cs.Add(ctx, "s1", p2, 1)
	require.NoError(t, err)

	order, err := os.Place(ctx, "s1", validShipping())
	require.NoError(t, err)
	assert.Equal(t, "s1", order.SessionID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	// 10*2 + 20*1 = 40 subtotal, below the threshold so +10 shipping
	assert.True(t, order.Total.Equal(decimal.NewFromInt(50)), "total %s", order.Total)
}

func TestPlaceOrderClearsCart(t *testing.T) {
	ctx := context.Background()
	os, cs, store := setupOrder(t)
	pid := addProduct(t, store, "vase", "30")

	_, err := cs.Add(ctx, "s1", pid, 1)
	require.NoError(t, err)

	_, err = os.Place(ctx, "s1", validShipping())
	require.NoError(t, err)

	cart, err := cs.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// the cleared cart cannot be ordered again
	_, err = os.Place(ctx, "s1", validShipping())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeEmptyCart, apperr.CodeOf(err))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	os, _, _ := setupOrder(t)

	_, err := os.Place(context.Background(), "s1", validShipping())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeEmptyCart, apperr.CodeOf(err))

	orders, err := os.ListBySession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderMissingShippingField(t *testing.T) {
	ctx := context.Background()
	os, cs, store := setupOrder(t)
	pid := addProduct(t, store, "mug", "15")
	_, err := cs.Add(ctx, "s1", pid, 1)
	require.NoError(t, err)

	d := validShipping()
	d.City = "   "
	_, err = os.Place(ctx, "s1", d)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))

	// validation failed before any write: cart untouched, no order
	cart, err := cs.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestOrderKeepsPriceSnapshot(t *testing.T) {
	ctx := context.Background()
	os, cs, store := setupOrder(t)
	pid := addProduct(t, store, "lamp", "50")

	_, err := cs.Add(ctx, "s1", pid, 2)
	require.NoError(t, err)

	order, err := os.Place(ctx, "s1", validShipping())
	require.NoError(t, err)

	store.SetProductPrice(pid, decimal.NewFromInt(90))

	got, err := os.Get(ctx, order.OrderID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Price.Equal(decimal.NewFromInt(50)), "snapshot %s", got.Items[0].Price)
	// the joined product carries the new catalog price, the line does not
	assert.True(t, got.Items[0].Product.Price.Equal(decimal.NewFromInt(90)))
	assert.True(t, got.Total.Equal(decimal.NewFromInt(100)), "total %s", got.Total)
}

func TestGetOrderNotFound(t *testing.T) {
	os, _, _ := setupOrder(t)

	_, err := os.Get(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestListOrdersBySession(t *testing.T) {
	ctx := context.Background()
	os, cs, store := setupOrder(t)
	pid := addProduct(t, store, "plate", "12")

	for i := 0; i < 2; i++ {
		_, err := cs.Add(ctx, "s1", pid, 1)
		require.NoError(t, err)
		_, err = os.Place(ctx, "s1", validShipping())
		require.NoError(t, err)
	}
	_, err := cs.Add(ctx, "s2", pid, 1)
	require.NoError(t, err)
	_, err = os.Place(ctx, "s2", validShipping())
	require.NoError(t, err)

	mine, err := os.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	// newest first
	assert.Greater(t, mine[0].OrderID, mine[1].OrderID)
	for _, o := range mine {
		assert.Equal(t, "s1", o.SessionID)
	}

	none, err := os.ListBySession(ctx, "s3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, model.ValidOrderTransition(model.OrderStatusPending, model.OrderStatusProcessing))
	assert.True(t, model.ValidOrderTransition(model.OrderStatusPending, model.OrderStatusCancelled))
	assert.True(t, model.ValidOrderTransition(model.OrderStatusShipped, model.OrderStatusDelivered))
	assert.False(t, model.ValidOrderTransition(model.OrderStatusDelivered, model.OrderStatusPending))
	assert.False(t, model.ValidOrderTransition(model.OrderStatusCancelled, model.OrderStatusProcessing))
}
