package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/puckwatch/puckwatch/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Game endpoints (public read access)
		v1.GET("/games", handler.ListGames)
		v1.GET("/games/:id", handler.GetGame)

		// User endpoints (public read access)
		v1.GET("/users", handler.ListUsers)

		// Fetch log endpoints (public read access)
		v1.GET("/fetch-logs", handler.ListFetchLogs)

		// Manual ingestion trigger (requires API key authentication)
		v1.POST("/fetch", middleware.Auth(authCfg), handler.TriggerFetch)
	}
}
