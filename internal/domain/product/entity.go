// internal/domain/product/entity.go
package product

import (
	"github.com/your-org/voice-shop/internal/pkg/apperr"
)

// ErrProductNotFound is returned when a product id is not in the catalog
var ErrProductNotFound = apperr.NotFound("product")

// Product represents a catalog entry. Products are immutable once loaded.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // Price in minor units (cents)
	Currency    string `json:"currency"`
	SKU         string `json:"sku"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
}

// DefaultProducts is the catalog the service starts with
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "p-100",
			Name:        "Aurora Headphones",
			Description: "Wireless over-ear with spatial audio",
			Price:       12900,
			Currency:    "USD",
			SKU:         "AUR-HE-001",
			Stock:       12,
			Category:    "audio",
			Image:       "https://picsum.photos/id/180/600/400",
		},
		{
			ID:          "p-101",
			Name:        "Nimbus Keyboard",
			Description: "Low-profile mechanical, hot-swappable",
			Price:       9900,
			Currency:    "USD",
			SKU:         "NIM-KB-002",
			Stock:       8,
			Category:    "peripherals",
			Image:       "https://picsum.photos/id/1060/600/400",
		},
		{
			ID:          "p-102",
			Name:        "Lumen Desk Lamp",
			Description: "USB-C smart lamp, warm-to-cool",
			Price:       5900,
			Currency:    "USD",
			SKU:         "LUM-LA-003",
			Stock:       25,
			Category:    "home",
			Image:       "https://picsum.photos/id/29/600/400",
		},
	}
}
