// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/domain/store"
	"github.com/your-org/voice-shop/internal/domain/transcript"
	"github.com/your-org/voice-shop/internal/interfaces/http/handlers"
	"github.com/your-org/voice-shop/internal/pkg/metrics"
	"github.com/your-org/voice-shop/internal/pkg/pdf"
)

func init() {
	// Request bodies are decoded strictly; unknown fields are a 400.
	binding.EnableDecoderDisallowUnknownFields = true
}

// Dependencies are the services the API routes are built from
type Dependencies struct {
	Store       *store.Store
	Transcripts *transcript.Service
	PDF         *pdf.Service
	Metrics     *metrics.HTTPMetrics
	Logger      logrus.FieldLogger
}

// SetupRoutes mounts every API route on rg
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	SetupProductRoutes(rg, deps)
	SetupPromoRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupOrderRoutes(rg, deps)
	SetupTranscriptRoutes(rg, deps)

	rg.GET("/tools", handlers.GetTools)
}

// SetupProductRoutes sets up catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Dependencies) {
	productHandler := handlers.NewProductHandler(deps.Store.Products)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupPromoRoutes sets up promotion routes
func SetupPromoRoutes(rg *gin.RouterGroup, deps Dependencies) {
	promoHandler := handlers.NewPromoHandler(deps.Store.Promos)

	rg.GET("/promos", promoHandler.GetPromos)
}

// SetupCartRoutes sets up cart and checkout routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Store.Carts)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Store.Checkout, deps.Metrics)

	carts := rg.Group("/carts")
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:id", cartHandler.GetCart)
		carts.POST("/:id/items", cartHandler.AddToCart)
		carts.GET("/:id/quote", checkoutHandler.Quote)
		carts.POST("/:id/checkout", checkoutHandler.Checkout)
	}
}

// SetupOrderRoutes sets up order routes
func SetupOrderRoutes(rg *gin.RouterGroup, deps Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.Store.Orders, deps.PDF, deps.Logger)

	orders := rg.Group("/orders")
	{
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.GetReceipt)
	}
}

// SetupTranscriptRoutes sets up the transcript log routes
func SetupTranscriptRoutes(rg *gin.RouterGroup, deps Dependencies) {
	if deps.Transcripts == nil {
		return
	}
	transcriptHandler := handlers.NewTranscriptHandler(deps.Transcripts)

	transcripts := rg.Group("/transcripts")
	{
		transcripts.GET("", transcriptHandler.GetMessages)
		transcripts.POST("", transcriptHandler.AddMessage)
	}
}
