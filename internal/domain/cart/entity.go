// internal/domain/cart/entity.go
package cart

import (
	"fmt"
	"time"

	"github.com/your-org/voice-shop/internal/pkg/apperr"
)

// MaxQuantity bounds a single cart line, including merged additions
const MaxQuantity = 10000

var (
	// ErrCartNotFound is returned for unknown cart ids
	ErrCartNotFound = apperr.NotFound("cart")
	// ErrInvalidQuantity is returned when a quantity or merged line is outside 1..MaxQuantity
	ErrInvalidQuantity = apperr.Invalid(fmt.Sprintf("quantity must be an integer between 1 and %d", MaxQuantity))
)

// Cart represents a shopping cart. Items hold at most one entry per product,
// in the order products were first added.
type Cart struct {
	ID        string    `json:"id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item represents a cart line
type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=10000"`
}

// TotalQuantity sums the quantities of all lines
func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) clone() Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
