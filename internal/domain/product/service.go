// internal/domain/product/service.go
package product

import (
	"strings"
)

// Catalog is the read-only product list. It is safe for concurrent use
// because nothing mutates it after construction.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// NewCatalog creates a catalog from the given products. Later duplicates of
// an id are ignored.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c
}

// ListRequest represents product list query parameters
type ListRequest struct {
	Query    string `form:"q"`
	Category string `form:"category"`
}

// List returns a copy of the catalog filtered by exact category and by a
// case-insensitive substring of name or description. Empty filters match all.
func (c *Catalog) List(req ListRequest) []Product {
	query := strings.ToLower(req.Query)

	result := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if req.Category != "" && p.Category != req.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		result = append(result, p)
	}

	return result
}

// Get returns the product with the given id
func (c *Catalog) Get(id string) (Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return c.products[idx], nil
}

// Exists reports whether id is in the catalog
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}
