// internal/domain/promo/entity.go
package promo

// Promo represents a percentage discount redeemable at checkout
type Promo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	DiscountPct int    `json:"discountPct"` // 0..100
}

// DefaultPromos is the promo list the service starts with
func DefaultPromos() []Promo {
	return []Promo{
		{Code: "WELCOME10", Description: "10% off first order", DiscountPct: 10},
		{Code: "FREESHIP", Description: "Free shipping over $50", DiscountPct: 0},
	}
}
