package router

import (
	"github.com/gin-gonic/gin"
	"github.com/hanbit/shopfront-backend/config"
	"github.com/hanbit/shopfront-backend/internal/app/controller"
	"github.com/hanbit/shopfront-backend/internal/middleware"
)

type Router struct {
	shopController *controller.ShopController
	pageController *controller.PageController
	config         *config.Config
}

func NewRouter(
	shopController *controller.ShopController,
	pageController *controller.PageController,
	cfg *config.Config,
) *Router {
	return &Router{
		shopController: shopController,
		pageController: pageController,
		config:         cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Shopfront API is running",
		})
	})

	api := router.Group("/api")
	{
		shops := api.Group("/shops")
		{
			shops.GET("", r.shopController.ListShops)
			shops.POST("", r.shopController.CreateShop)
			shops.POST("/reconcile", r.shopController.ReconcileStats)
			shops.PUT("/:slug", r.shopController.UpdateShop)
		}
	}

	// Lowest-priority catch-all: tenant resolution decides between the
	// landing page, a storefront and the not-found page.
	router.NoRoute(r.pageController.ServePage)

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
