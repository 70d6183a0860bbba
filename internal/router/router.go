// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sproutlabs/sprout-backend/internal/config"
	"github.com/sproutlabs/sprout-backend/internal/datasync"
	"github.com/sproutlabs/sprout-backend/internal/handlers"
	"github.com/sproutlabs/sprout-backend/internal/middleware"
	"github.com/sproutlabs/sprout-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize the data sync layer and services
	store := datasync.NewStore(db)
	store.Prime()

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Storage service degraded to local uploads")
		storageService, _ = services.NewStorageService(&config.Config{})
	}
	aiService, err := services.NewAIService(cfg.AI, storageService)
	if err != nil {
		logrus.WithError(err).Warn("AI client init failed, generation will use fallbacks")
		aiService, _ = services.NewAIService(config.AIConfig{}, storageService)
	}
	sessionService := services.NewSessionService(store, cfg)
	catalogService := services.NewCatalogService(store)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	productHandler := handlers.NewProductHandler(store)
	cartHandler := handlers.NewCartHandler(store, sessionService)
	checkoutHandler := handlers.NewCheckoutHandler(sessionService)
	messageHandler := handlers.NewMessageHandler(store)
	settingsHandler := handlers.NewSettingsHandler(store)
	profileHandler := handlers.NewProfileHandler(store, sessionService)
	aiHandler := handlers.NewAIHandler(aiService)
	streamHandler := handlers.NewStreamHandler(store)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Local uploads are served directly in development; production fronts
	// them with S3/CloudFront.
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	// API v1 routes
	v1 := r.Group("/v1")
	v1.Use(middleware.SessionMiddleware(sessionService))
	{
		// Storefront catalog
		catalog := v1.Group("/catalog")
		{
			catalog.GET("", catalogHandler.GetCatalog)
			catalog.GET("/:id", catalogHandler.GetCatalogItem)
		}

		// Product management (owner only)
		products := v1.Group("/products")
		products.Use(middleware.OwnerRequired())
		{
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Cart
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:itemId", cartHandler.SetQuantity)
			cart.DELETE("/items/:itemId", cartHandler.RemoveItem)
		}

		// Checkout handshake
		checkoutGroup := v1.Group("/checkout")
		{
			checkoutGroup.GET("", checkoutHandler.GetStatus)
			checkoutGroup.POST("/begin", checkoutHandler.Begin)
			checkoutGroup.POST("/back", checkoutHandler.Back)
			checkoutGroup.POST("/confirm", checkoutHandler.Confirm)
		}

		// Messages
		messages := v1.Group("/messages")
		{
			messages.GET("/:peerId", messageHandler.GetConversation)
			messages.POST("", messageHandler.SendMessage)
			messages.DELETE("/:id", messageHandler.DeleteMessage)
		}

		// Shop settings
		v1.GET("/settings", settingsHandler.GetSettings)
		v1.PUT("/settings", middleware.OwnerRequired(), settingsHandler.UpdateSettings)

		// Profiles and simulated identity
		v1.GET("/profiles", profileHandler.GetProfiles)
		v1.GET("/session", profileHandler.GetSession)
		v1.POST("/session/switch", profileHandler.SwitchProfile)

		// AI generation (owner only, tighter rate limit)
		ai := v1.Group("/ai")
		ai.Use(middleware.OwnerRequired())
		ai.Use(middleware.AIRateLimit())
		{
			ai.POST("/description", aiHandler.GenerateDescription)
			ai.POST("/product-image", aiHandler.GenerateProductImage)
			ai.POST("/try-on", aiHandler.GenerateTryOn)
		}

		// Server-sent event streams for the data sync layer
		stream := v1.Group("/stream")
		{
			stream.GET("/products", streamHandler.StreamProducts)
			stream.GET("/settings", streamHandler.StreamSettings)
			stream.GET("/messages", streamHandler.StreamMessages)
			stream.GET("/profiles", streamHandler.StreamProfiles)
		}
	}

	return r
}
