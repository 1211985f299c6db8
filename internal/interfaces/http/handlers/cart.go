// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/voice-shop/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts *cart.Registry
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Registry) *CartHandler {
	return &CartHandler{carts: carts}
}

// CreateCart handles POST /carts
func (h *CartHandler) CreateCart(c *gin.Context) {
	c.JSON(http.StatusCreated, h.carts.Create())
}

// GetCart handles GET /carts/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	ct, err := h.carts.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ct)
}

// AddToCart handles POST /carts/:id/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ct, err := h.carts.AddItem(c.Param("id"), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ct)
}
