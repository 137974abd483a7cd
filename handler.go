package main

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	store    store
	analyzer imageAnalyzer  // nil when no model API key is configured
	cache    *estimateCache // nil when Redis is not configured
	now      func() time.Time
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// registerRoutes registers all API routes on the router. There is a single
// profile and no authentication.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/profile", h.getProfile)
	api.PUT("/profile", h.putProfile)
	api.DELETE("/profile", h.resetProfile)
	api.GET("/foods", h.searchFoods)
	api.GET("/foods/:id", h.getFood)
	api.GET("/meal-logs", h.getMealLogs)
	api.POST("/meal-logs", h.createMealLog)
	api.DELETE("/meal-logs/:id", h.deleteMealLog)
	api.GET("/daily", h.getDailySummary)
	api.POST("/analyze", h.analyzeImage)
}
