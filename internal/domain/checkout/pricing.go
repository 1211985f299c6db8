// internal/domain/checkout/pricing.go
package checkout

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/your-org/voice-shop/internal/domain/cart"
	"github.com/your-org/voice-shop/internal/domain/product"
	"github.com/your-org/voice-shop/internal/pkg/apperr"
)

// ErrAmountOutOfRange is returned when a cart's subtotal does not fit in minor units
var ErrAmountOutOfRange = apperr.Invalid("order amount out of range")

var (
	hundred   = decimal.NewFromInt(100)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

// Pricing represents the price breakdown of a cart
type Pricing struct {
	Subtotal  int64  `json:"subtotal"`
	Discount  int64  `json:"discount"`
	Total     int64  `json:"total"`
	PromoCode string `json:"promoCode,omitempty"`
}

// Subtotal sums price x quantity over the items. Items whose product is no
// longer in the catalog contribute nothing. Sums beyond int64 are rejected.
func Subtotal(items []cart.Item, products ProductReader) (int64, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		p, err := products.Get(item.ProductID)
		if err != nil {
			continue
		}
		subtotal = subtotal.Add(decimal.NewFromInt(p.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if subtotal.IsNegative() || subtotal.GreaterThan(maxAmount) {
		return 0, ErrAmountOutOfRange
	}
	return subtotal.IntPart(), nil
}

// Discount returns pct percent of subtotal rounded half-up to a whole minor unit
func Discount(subtotal int64, pct int) int64 {
	if subtotal <= 0 || pct <= 0 {
		return 0
	}
	return decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromInt(int64(pct))).
		Div(hundred).
		Round(0).
		IntPart()
}

// Total applies the discount, never going below zero
func Total(subtotal, discount int64) int64 {
	return max(0, subtotal-discount)
}

// ensure the catalog satisfies ProductReader
var _ ProductReader = (*product.Catalog)(nil)
