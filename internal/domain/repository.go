package domain

import (
	"context"
	"time"
)

// PlanCache defines the interface for short-lived weekly plan
// memoization, scoped per user and canonical week start.
type PlanCache interface {
	Get(ctx context.Context, key string) (*CachedPlan, error)
	Set(ctx context.Context, key string, plan *CachedPlan, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteForUser(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
}

// MealBackend defines the interface for the three consumed planner
// backend endpoints.
type MealBackend interface {
	// FetchWeeklyPlan retrieves the weekly plan starting at weekStart
	// (YYYY-MM-DD). Returns ErrPlanNotFound when no plan exists yet.
	FetchWeeklyPlan(ctx context.Context, weekStart string) (*WeeklyPlanResponse, error)

	// GenerateWeeklySuggestions asks the backend to build a weekly plan
	// from the user's recommendation pool. Returns
	// ErrNoBaseRecommendations when that pool does not exist yet.
	GenerateWeeklySuggestions(ctx context.Context) (*WeeklyPlanResponse, error)

	// FetchBaseRecommendations generates up to count base recipe
	// recommendations for the user.
	FetchBaseRecommendations(ctx context.Context, count int) ([]WireRecipe, error)
}
