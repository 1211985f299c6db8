// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/domain/order"
	"github.com/your-org/voice-shop/internal/pkg/pdf"
)

// OrderHandler handles order lookup and receipt endpoints
type OrderHandler struct {
	orders *order.Registry
	pdf    *pdf.Service
	logger logrus.FieldLogger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Registry, pdfService *pdf.Service, logger logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{orders: orders, pdf: pdfService, logger: logger}
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// GetReceipt handles GET /orders/:id/receipt. ?format=html skips PDF rendering.
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	o, err := h.orders.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "html" {
		body, err := h.pdf.RenderHTML(o)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
		return
	}

	buf, err := h.pdf.GenerateReceipt(o)
	if err != nil {
		h.logger.WithError(err).WithField("order_id", o.ID).Error("Failed to generate receipt")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", o.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
