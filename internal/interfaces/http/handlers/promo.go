// internal/interfaces/http/handlers/promo.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/voice-shop/internal/domain/promo"
)

// PromoHandler handles promotion endpoints
type PromoHandler struct {
	promos *promo.Registry
}

// NewPromoHandler creates a new promo handler
func NewPromoHandler(promos *promo.Registry) *PromoHandler {
	return &PromoHandler{promos: promos}
}

// GetPromos handles GET /promos
func (h *PromoHandler) GetPromos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"promos": h.promos.List()})
}
