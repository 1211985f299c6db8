// internal/domain/cart/service.go
package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/domain/product"
)

// ProductChecker reports whether a product id is in the catalog
type ProductChecker interface {
	Exists(productID string) bool
}

// Registry owns every cart for the lifetime of the process.
//
// The map is guarded by mu; each cart's item list is guarded by its own
// entry lock so mutations on one cart never wait on another.
type Registry struct {
	mu       sync.RWMutex
	carts    map[string]*entry
	products ProductChecker
	logger   logrus.FieldLogger
	newID    func() string
	now      func() time.Time
}

type entry struct {
	mu   sync.Mutex
	cart Cart
}

// Option customizes a Registry
type Option func(*Registry)

// WithIDGenerator overrides the cart id generator
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) { r.newID = fn }
}

// WithClock overrides the time source
func WithClock(fn func() time.Time) Option {
	return func(r *Registry) { r.now = fn }
}

// NewRegistry creates a new cart registry
func NewRegistry(products ProductChecker, logger logrus.FieldLogger, opts ...Option) *Registry {
	r := &Registry{
		carts:    make(map[string]*entry),
		products: products,
		logger:   logger,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create stores a new empty cart under a fresh id
func (r *Registry) Create() Cart {
	now := r.now()

	r.mu.Lock()
	id := r.newID()
	for r.carts[id] != nil {
		id = r.newID()
	}
	created := Cart{ID: id, Items: []Item{}, CreatedAt: now, UpdatedAt: now}
	r.carts[id] = &entry{cart: created.clone()}
	r.mu.Unlock()

	r.logger.WithField("cart_id", id).Debug("cart created")
	return created
}

// Get returns a snapshot of the cart
func (r *Registry) Get(cartID string) (Cart, error) {
	e, ok := r.lookup(cartID)
	if !ok {
		return Cart{}, ErrCartNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.clone(), nil
}

// AddItem adds quantity units of a product. An existing line for the product
// is incremented in place; otherwise a line is appended. The cart is left
// untouched when an error is returned.
func (r *Registry) AddItem(cartID, productID string, quantity int) (Cart, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return Cart{}, ErrInvalidQuantity
	}

	e, ok := r.lookup(cartID)
	if !ok {
		return Cart{}, ErrCartNotFound
	}

	if !r.products.Exists(productID) {
		return Cart{}, fmt.Errorf("add %s to cart %s: %w", productID, cartID, product.ErrProductNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	line := -1
	for i := range e.cart.Items {
		if e.cart.Items[i].ProductID == productID {
			line = i
			break
		}
	}

	merged := line >= 0
	if merged {
		if e.cart.Items[line].Quantity > MaxQuantity-quantity {
			return Cart{}, fmt.Errorf("add %d of %s to cart %s: %w", quantity, productID, cartID, ErrInvalidQuantity)
		}
		e.cart.Items[line].Quantity += quantity
	} else {
		e.cart.Items = append(e.cart.Items, Item{ProductID: productID, Quantity: quantity})
	}
	e.cart.UpdatedAt = r.now()

	r.logger.WithFields(logrus.Fields{
		"cart_id":    cartID,
		"product_id": productID,
		"quantity":   quantity,
		"merged":     merged,
	}).Debug("cart item added")

	return e.cart.clone(), nil
}

// Count returns the number of carts held
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}

func (r *Registry) lookup(cartID string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.carts[cartID]
	return e, ok
}
