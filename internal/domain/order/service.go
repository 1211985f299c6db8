// internal/domain/order/service.go
package order

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IDPrefix is prepended to every generated order id
const IDPrefix = "o-"

// Registry owns completed orders. Orders are write-once, so a single
// RWMutex is enough: readers never wait on each other.
type Registry struct {
	mu     sync.RWMutex
	orders map[string]Order
	logger logrus.FieldLogger
	newID  func() string
}

// NewRegistry creates a new order registry
func NewRegistry(logger logrus.FieldLogger) *Registry {
	return &Registry{
		orders: make(map[string]Order),
		logger: logger,
		newID:  func() string { return IDPrefix + uuid.NewString() },
	}
}

// Insert assigns a fresh id to the draft, stores it and returns the stored order
func (r *Registry) Insert(draft Order) Order {
	r.mu.Lock()
	id := r.newID()
	for {
		if _, taken := r.orders[id]; !taken {
			break
		}
		id = r.newID()
	}
	draft.ID = id
	r.orders[id] = draft
	r.mu.Unlock()

	r.logger.WithFields(logrus.Fields{
		"order_id": draft.ID,
		"cart_id":  draft.CartID,
		"total":    draft.Total,
	}).Info("order stored")

	return draft
}

// Get returns the order with the given id
func (r *Registry) Get(orderID string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

// Count returns the number of stored orders
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
