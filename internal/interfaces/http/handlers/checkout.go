// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/voice-shop/internal/domain/checkout"
	"github.com/your-org/voice-shop/internal/pkg/metrics"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
	metrics  *metrics.HTTPMetrics
}

// NewCheckoutHandler creates a new checkout handler. m may be nil.
func NewCheckoutHandler(svc *checkout.Service, m *metrics.HTTPMetrics) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc, metrics: m}
}

// Checkout handles POST /carts/:id/checkout. The body is optional.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	o, err := h.checkout.Checkout(c.Request.Context(), c.Param("id"), req.PromoCode)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.Orders.Inc()
	}
	c.JSON(http.StatusCreated, o)
}

// Quote handles GET /carts/:id/quote?promoCode=
func (h *CheckoutHandler) Quote(c *gin.Context) {
	pricing, err := h.checkout.Quote(c.Param("id"), c.Query("promoCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pricing)
}
