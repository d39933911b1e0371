package http

import (
	"github.com/gin-gonic/gin"
	"github.com/platoplan/planner/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		planner := v1.Group("/planner")
		{
			planner.GET("/week", handler.GetWeekPlan)
			planner.POST("/refresh", handler.RefreshWeekPlan)
			planner.GET("/day", handler.GetDayPlan)
			planner.GET("/stats", handler.GetStats)
			planner.GET("/suggestions", handler.GetSuggestions)
			planner.POST("/meals/change", handler.ChangeMeal)
			planner.GET("/recipes/:id", handler.GetRecipeByID)
			planner.POST("/cache/clear", handler.ClearCache)
		}
	}

	return router
}
