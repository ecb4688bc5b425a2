package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okonek/guidedcooking/backend/internal/api"
	"github.com/okonek/guidedcooking/backend/internal/middleware"
)

// Setup configures the application routes
func Setup(recipeHandler *api.RecipeHandler, proxyHandler *api.ProxyHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Guided Cooking Backend API")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	apiGroup := router.Group("/api")
	recipeHandler.RegisterRoutes(apiGroup)
	proxyHandler.RegisterRoutes(apiGroup)

	return router
}
