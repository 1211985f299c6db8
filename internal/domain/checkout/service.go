// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/domain/cart"
	"github.com/your-org/voice-shop/internal/domain/order"
	"github.com/your-org/voice-shop/internal/domain/product"
	"github.com/your-org/voice-shop/internal/domain/promo"
)

// DefaultEtaDays is the delivery estimate stamped on new orders
const DefaultEtaDays = 5

// CartReader returns a snapshot of a cart
type CartReader interface {
	Get(cartID string) (cart.Cart, error)
}

// ProductReader looks up catalog entries
type ProductReader interface {
	Get(productID string) (product.Product, error)
}

// PromoLookup finds a promo by code
type PromoLookup interface {
	Lookup(code string) (promo.Promo, bool)
}

// OrderWriter stores a new order and returns it with its id
type OrderWriter interface {
	Insert(draft order.Order) order.Order
}

// EventPublisher announces created orders to other systems
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, o order.Order) error
}

// Request represents checkout request
type Request struct {
	PromoCode string `json:"promoCode" binding:"max=64"`
}

// Service converts carts into orders
type Service struct {
	carts     CartReader
	products  ProductReader
	promos    PromoLookup
	orders    OrderWriter
	publisher EventPublisher
	logger    logrus.FieldLogger
	currency  string
	etaDays   int
	now       func() time.Time
}

// Config holds checkout settings
type Config struct {
	Currency string
	EtaDays  int
	Now      func() time.Time
}

// NewService creates a new checkout service. A nil publisher disables events.
func NewService(
	carts CartReader,
	products ProductReader,
	promos PromoLookup,
	orders OrderWriter,
	publisher EventPublisher,
	logger logrus.FieldLogger,
	cfg Config,
) *Service {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.EtaDays == 0 {
		cfg.EtaDays = DefaultEtaDays
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}

	return &Service{
		carts:     carts,
		products:  products,
		promos:    promos,
		orders:    orders,
		publisher: publisher,
		logger:    logger,
		currency:  cfg.Currency,
		etaDays:   cfg.EtaDays,
		now:       cfg.Now,
	}
}

// Quote prices the cart's current contents without creating an order
func (s *Service) Quote(cartID, promoCode string) (Pricing, error) {
	c, err := s.carts.Get(cartID)
	if err != nil {
		return Pricing{}, err
	}
	return s.price(c, promoCode)
}

// Checkout prices the cart and stores a new order for it.
//
// The cart is neither cleared nor locked afterwards and stock is not
// decremented: checking out the same cart twice yields two independent
// orders over the same items.
func (s *Service) Checkout(ctx context.Context, cartID, promoCode string) (order.Order, error) {
	c, err := s.carts.Get(cartID)
	if err != nil {
		return order.Order{}, fmt.Errorf("checkout cart %s: %w", cartID, err)
	}

	pricing, err := s.price(c, promoCode)
	if err != nil {
		return order.Order{}, fmt.Errorf("price cart %s: %w", cartID, err)
	}

	created := s.orders.Insert(order.Order{
		CartID:    c.ID,
		Subtotal:  pricing.Subtotal,
		Discount:  pricing.Discount,
		PromoCode: pricing.PromoCode,
		Total:     pricing.Total,
		Currency:  s.currency,
		Status:    order.StatusProcessing,
		EtaDays:   s.etaDays,
		CreatedAt: s.now(),
	})

	log := s.logger.WithFields(logrus.Fields{
		"order_id": created.ID,
		"cart_id":  c.ID,
		"subtotal": pricing.Subtotal,
		"discount": pricing.Discount,
		"total":    pricing.Total,
	})
	log.Info("checkout completed")

	if err := s.publisher.PublishOrderCreated(ctx, created); err != nil {
		log.WithError(err).Warn("failed to publish order created event")
	}

	return created, nil
}

func (s *Service) price(c cart.Cart, promoCode string) (Pricing, error) {
	subtotal, err := Subtotal(c.Items, s.products)
	if err != nil {
		return Pricing{}, err
	}
	p := Pricing{Subtotal: subtotal}

	if promoCode != "" {
		if match, ok := s.promos.Lookup(promoCode); ok {
			p.Discount = Discount(p.Subtotal, match.DiscountPct)
			p.PromoCode = match.Code
		}
	}

	p.Total = Total(p.Subtotal, p.Discount)
	return p, nil
}

// NoopPublisher drops every event
type NoopPublisher struct{}

// PublishOrderCreated implements EventPublisher
func (NoopPublisher) PublishOrderCreated(context.Context, order.Order) error { return nil }
