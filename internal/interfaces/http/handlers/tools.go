// internal/interfaces/http/handlers/tools.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Tool describes one store operation a voice assistant may call
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  Schema `json:"parameters"`
}

// Schema is the JSON-schema subset used by tool parameters
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property is a single tool parameter
type Property struct {
	Type    string `json:"type"`
	Minimum *int   `json:"minimum,omitempty"`
}

var one = 1

var toolManifest = []Tool{
	{
		Name:        "list_products",
		Description: "Search or browse products.",
		Parameters: Schema{Type: "object", Properties: map[string]Property{
			"query":    {Type: "string"},
			"category": {Type: "string"},
		}},
	},
	{
		Name:        "get_product",
		Description: "Fetch a single product by id.",
		Parameters: Schema{
			Type:       "object",
			Properties: map[string]Property{"productId": {Type: "string"}},
			Required:   []string{"productId"},
		},
	},
	{
		Name:        "create_cart",
		Description: "Start a new empty cart.",
		Parameters:  Schema{Type: "object", Properties: map[string]Property{}},
	},
	{
		Name:        "add_to_cart",
		Description: "Add a product to a cart; repeated adds merge quantities.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"cartId":    {Type: "string"},
				"productId": {Type: "string"},
				"quantity":  {Type: "integer", Minimum: &one},
			},
			Required: []string{"cartId", "productId", "quantity"},
		},
	},
	{
		Name:        "checkout_cart",
		Description: "Place an order for a cart, optionally applying a promo code.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"cartId":    {Type: "string"},
				"promoCode": {Type: "string"},
			},
			Required: []string{"cartId"},
		},
	},
	{
		Name:        "track_order",
		Description: "Look up an order's status and delivery estimate.",
		Parameters: Schema{
			Type:       "object",
			Properties: map[string]Property{"orderId": {Type: "string"}},
			Required:   []string{"orderId"},
		},
	},
	{
		Name:        "list_promotions",
		Description: "List the active promo codes.",
		Parameters:  Schema{Type: "object", Properties: map[string]Property{}},
	},
}

// GetTools handles GET /tools
func GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": toolManifest})
}
