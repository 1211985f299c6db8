// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/your-org/voice-shop/internal/pkg/apperr"
)

// ErrOrderNotFound is returned for unknown order ids
var ErrOrderNotFound = apperr.NotFound("order")

// Status represents the order status
type Status string

// Orders are created as processing. The later states are reserved for
// fulfilment events that this service does not drive.
const (
	StatusProcessing Status = "processing"
	StatusPaid       Status = "paid"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusProcessing, StatusPaid, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Order is an immutable priced snapshot of a cart
type Order struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cartId"`
	Subtotal  int64     `json:"subtotal"` // In cents
	Discount  int64     `json:"discount"`
	PromoCode string    `json:"promoCode,omitempty"`
	Total     int64     `json:"total"`
	Currency  string    `json:"currency"`
	Status    Status    `json:"status"`
	EtaDays   int       `json:"etaDays"`
	CreatedAt time.Time `json:"createdAt"`
}

// FormattedTotal renders the total in major units, e.g. "178.20 USD"
func (o Order) FormattedTotal() string {
	return formatMinor(o.Total, o.Currency)
}

// FormattedSubtotal renders the subtotal in major units
func (o Order) FormattedSubtotal() string {
	return formatMinor(o.Subtotal, o.Currency)
}

// FormattedDiscount renders the discount in major units
func (o Order) FormattedDiscount() string {
	return formatMinor(o.Discount, o.Currency)
}

func formatMinor(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, currency)
}
