// internal/domain/store/store.go
package store

import (
	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/config"
	"github.com/your-org/voice-shop/internal/domain/cart"
	"github.com/your-org/voice-shop/internal/domain/checkout"
	"github.com/your-org/voice-shop/internal/domain/order"
	"github.com/your-org/voice-shop/internal/domain/product"
	"github.com/your-org/voice-shop/internal/domain/promo"
)

// Store owns the catalog, promos, carts and orders of one process.
// Build it once at startup and hand it to the transport layer.
type Store struct {
	Products *product.Catalog
	Promos   *promo.Registry
	Carts    *cart.Registry
	Orders   *order.Registry
	Checkout *checkout.Service
}

// Options configure a Store. Zero values fall back to the seeded catalog,
// seeded promos and no event publishing.
type Options struct {
	Products  []product.Product
	Promos    []promo.Promo
	Publisher checkout.EventPublisher
	Checkout  checkout.Config
}

// New wires a Store
func New(logger logrus.FieldLogger, opts Options) *Store {
	if opts.Products == nil {
		opts.Products = product.DefaultProducts()
	}
	if opts.Promos == nil {
		opts.Promos = promo.DefaultPromos()
	}

	catalog := product.NewCatalog(opts.Products)
	promos := promo.NewRegistry(opts.Promos)
	carts := cart.NewRegistry(catalog, logger.WithField("component", "cart"))
	orders := order.NewRegistry(logger.WithField("component", "order"))

	return &Store{
		Products: catalog,
		Promos:   promos,
		Carts:    carts,
		Orders:   orders,
		Checkout: checkout.NewService(
			carts,
			catalog,
			promos,
			orders,
			opts.Publisher,
			logger.WithField("component", "checkout"),
			opts.Checkout,
		),
	}
}

// NewFromConfig wires a Store with settings from the application config
func NewFromConfig(cfg *config.Config, logger logrus.FieldLogger, publisher checkout.EventPublisher) *Store {
	return New(logger, Options{
		Publisher: publisher,
		Checkout: checkout.Config{
			Currency: cfg.Store.Currency,
			EtaDays:  cfg.Store.EtaDays,
		},
	})
}
