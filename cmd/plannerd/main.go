package main

import (
	"fmt"
	"log"
	"os"

	"github.com/platoplan/planner/config"
	httpDelivery "github.com/platoplan/planner/internal/delivery/http"
	"github.com/platoplan/planner/internal/infrastructure/cache"
	"github.com/platoplan/planner/internal/infrastructure/mealapi"
	"github.com/platoplan/planner/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PlatoPlan Planner v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)
	log.Printf("Loader debounce: %s", cfg.Loader.Debounce)

	// Initialize infrastructure dependencies
	planCache := cache.NewMemoryCache()

	backendClient := mealapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.AuthToken, cfg.Backend.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		backendClient.SetDebug(true)
		log.Printf("Backend client debug mode enabled")
	}

	if cfg.Backend.AuthToken != "" {
		log.Printf("Planner backend configured: %s", cfg.Backend.BaseURL)
	} else {
		log.Printf("WARNING: Planner backend configured without auth token: %s", cfg.Backend.BaseURL)
	}

	// Initialize usecase layer
	plannerService := usecase.NewPlannerService(
		planCache,
		backendClient,
		cfg.Backend.UserID,
		usecase.PlannerServiceConfig{
			CacheTTL:            cfg.Cache.TTL,
			Debounce:            cfg.Loader.Debounce,
			RecommendationCount: cfg.Loader.RecommendationCount,
		},
	)

	suggestionService := usecase.NewSuggestionService(plannerService, cfg.Suggestions.HorizonDays)

	log.Printf("Suggestions: horizon=%dd, recommendations=%d",
		cfg.Suggestions.HorizonDays,
		cfg.Loader.RecommendationCount)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(plannerService, suggestionService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
