// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/voice-shop/internal/domain/product"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalog *product.Catalog
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *product.Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GetProducts handles GET /products?q=&category=
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var req product.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": h.catalog.List(req)})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
