package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/voice-shop/internal/config"
	"github.com/your-org/voice-shop/internal/domain/order"
	"github.com/your-org/voice-shop/internal/domain/product"
	"github.com/your-org/voice-shop/internal/domain/promo"
	"github.com/your-org/voice-shop/internal/pkg/logger"
)

func TestNewSeedsDefaults(t *testing.T) {
	s := New(logger.Discard(), Options{})

	assert.Len(t, s.Products.List(product.ListRequest{}), 3)
	assert.Len(t, s.Promos.List(), 2)
	assert.Zero(t, s.Carts.Count())
	assert.Zero(t, s.Orders.Count())
}

func TestInstancesAreIsolated(t *testing.T) {
	a := New(logger.Discard(), Options{})
	b := New(logger.Discard(), Options{})

	c := a.Carts.Create()

	_, err := b.Carts.Get(c.ID)
	assert.Error(t, err)
	assert.Equal(t, 1, a.Carts.Count())
	assert.Zero(t, b.Carts.Count())
}

func TestEndToEnd(t *testing.T) {
	s := New(logger.Discard(), Options{})

	c := s.Carts.Create()
	_, err := s.Carts.AddItem(c.ID, "p-101", 1)
	require.NoError(t, err)
	_, err = s.Carts.AddItem(c.ID, "p-101", 1)
	require.NoError(t, err)

	o, err := s.Checkout.Checkout(context.Background(), c.ID, "welcome10")
	require.NoError(t, err)

	got, err := s.Orders.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(17820), got.Total)
	assert.Equal(t, order.StatusProcessing, got.Status)
}

func TestCustomCatalogAndPromos(t *testing.T) {
	s := New(logger.Discard(), Options{
		Products: []product.Product{{ID: "x", Name: "Widget", Price: 1000}},
		Promos:   []promo.Promo{{Code: "HALF", DiscountPct: 50}},
	})

	c := s.Carts.Create()
	_, err := s.Carts.AddItem(c.ID, "x", 3)
	require.NoError(t, err)

	o, err := s.Checkout.Checkout(context.Background(), c.ID, "half")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), o.Total)
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Currency: "EUR", EtaDays: 3}}
	s := NewFromConfig(cfg, logger.Discard(), nil)

	c := s.Carts.Create()
	o, err := s.Checkout.Checkout(context.Background(), c.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "EUR", o.Currency)
	assert.Equal(t, 3, o.EtaDays)
}
