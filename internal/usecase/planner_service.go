package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/platoplan/planner/internal/domain"
	"github.com/platoplan/planner/internal/infrastructure/mealapi"
)

// PlannerServiceConfig holds configuration for the planner service
type PlannerServiceConfig struct {
	CacheTTL            time.Duration
	Debounce            time.Duration
	RecommendationCount int
}

// PlannerService produces weekly plans for a user, using the cache when
// valid, else fetching from the backend with a two-tier generation
// fallback when the server reports missing prerequisite data. It owns
// the observable planner state consumed by the delivery layer.
type PlannerService struct {
	cache    domain.PlanCache
	backend  domain.MealBackend
	userID   string
	cacheTTL time.Duration
	debounce time.Duration
	recCount int

	mu           sync.Mutex
	weekPlan     *domain.WeekPlan
	recipePool   []domain.Recipe
	isLoading    bool
	loadErr      error
	selectedDate time.Time
	currentMonth time.Time

	// requestSeq increases once per load that actually begins;
	// currentReq marks the newest one. A load compares its own sequence
	// against currentReq at every resume point and abandons its result
	// silently when superseded.
	requestSeq    uint64
	currentReq    uint64
	inFlightKey   string
	debounceTimer *time.Timer
}

// NewPlannerService creates a new planner service for the given user
func NewPlannerService(
	cache domain.PlanCache,
	backend domain.MealBackend,
	userID string,
	config PlannerServiceConfig,
) *PlannerService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}
	debounce := config.Debounce
	if debounce == 0 {
		debounce = 300 * time.Millisecond
	}
	recCount := config.RecommendationCount
	if recCount == 0 {
		recCount = 10
	}

	now := time.Now()
	return &PlannerService{
		cache:        cache,
		backend:      backend,
		userID:       userID,
		cacheTTL:     cacheTTL,
		debounce:     debounce,
		recCount:     recCount,
		selectedDate: now,
		currentMonth: now,
	}
}

// cacheKey builds the per-user cache key for the week containing date
func (s *PlannerService) cacheKey(weekStart string) string {
	return fmt.Sprintf("%s-%s", weekStart, s.userID)
}

// LoadWeekPlan schedules a debounced load of the week containing date.
// Rapid successive calls collapse: each call restarts the timer and
// only the last one in a burst actually begins I/O. A zero date means
// the current week.
func (s *PlannerService) LoadWeekPlan(ctx context.Context, date time.Time) {
	if date.IsZero() {
		date = time.Now()
	}

	s.mu.Lock()
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.debounce, func() {
		s.load(ctx, date)
	})
	s.mu.Unlock()
}

// WeekPlanFor loads and returns the plan for the week containing date,
// bypassing the debounce. Used by the delivery layer, which needs the
// result in the same call.
func (s *PlannerService) WeekPlanFor(ctx context.Context, date time.Time) (*domain.WeekPlan, error) {
	if date.IsZero() {
		date = time.Now()
	}
	s.load(ctx, date)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.weekPlan, nil
}

// RefreshWeekPlan drops this user's cache entries and reloads the week
// of the currently selected date.
func (s *PlannerService) RefreshWeekPlan(ctx context.Context) {
	if err := s.cache.DeleteForUser(ctx, s.userID); err != nil {
		log.Printf("[Planner] cache invalidation failed: %v", err)
	}

	s.mu.Lock()
	date := s.selectedDate
	s.mu.Unlock()

	s.load(ctx, date)
}

// ClearCache drops the entire plan cache
func (s *PlannerService) ClearCache(ctx context.Context) {
	if err := s.cache.Clear(ctx); err != nil {
		log.Printf("[Planner] cache clear failed: %v", err)
	}
}

// EnsureCurrentWeek reloads for today whenever the loaded plan's range
// no longer contains today (a new calendar week has begun since it was
// loaded). No-op when nothing is loaded or the plan is still current.
func (s *PlannerService) EnsureCurrentWeek(ctx context.Context) {
	now := time.Now()
	today := FormatDate(now)

	s.mu.Lock()
	stale := s.weekPlan != nil && !s.weekPlan.Contains(today)
	s.mu.Unlock()

	if stale {
		log.Printf("[Planner] loaded week no longer contains %s, resyncing", today)
		s.load(ctx, now)
	}
}

// load runs the full fetch sequence for the week containing date:
// cache check, backend fetch with remediation, conversion, cache write
// and state update. Runs synchronously on the calling goroutine.
func (s *PlannerService) load(ctx context.Context, date time.Time) {
	weekStart := FormatDate(WeekStartOf(date))
	key := s.cacheKey(weekStart)

	s.mu.Lock()
	if s.isLoading && s.inFlightKey == key {
		// Same week already in flight; its result will land shortly
		s.mu.Unlock()
		return
	}
	s.requestSeq++
	seq := s.requestSeq
	s.currentReq = seq
	s.mu.Unlock()

	if cached, err := s.cache.Get(ctx, key); err == nil {
		s.mu.Lock()
		if s.currentReq == seq {
			s.weekPlan = cached.WeekPlan
			s.recipePool = dedupRecipePool(cached.WeekPlan)
			s.loadErr = nil
		}
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.isLoading = true
	s.inFlightKey = key
	s.loadErr = nil
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.currentReq == seq {
			s.isLoading = false
			s.inFlightKey = ""
		}
		s.mu.Unlock()
	}()

	resp, err := s.fetchWithRemediation(ctx, weekStart)
	if err != nil {
		s.mu.Lock()
		if s.currentReq == seq {
			// Prior weekPlan state stays untouched on failure
			s.loadErr = err
		}
		s.mu.Unlock()
		return
	}

	plan, err := mealapi.ToWeekPlan(resp, s.userID)
	if err != nil {
		s.mu.Lock()
		if s.currentReq == seq {
			s.loadErr = fmt.Errorf("invalid weekly plan response: %w", err)
		}
		s.mu.Unlock()
		return
	}

	pool := dedupRecipePool(plan)
	if len(pool) == 0 {
		// The plan came back with no recipes at all; pull base
		// recommendations so suggestions still have candidates
		pool = s.poolFromRecommendations(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentReq != seq {
		// Superseded while awaiting I/O; drop silently
		return
	}

	s.weekPlan = plan
	s.recipePool = pool
	s.loadErr = nil

	if err := s.cache.Set(ctx, key, &domain.CachedPlan{Response: resp, WeekPlan: plan}, s.cacheTTL); err != nil {
		log.Printf("[Planner] cache write failed for %s: %v", key, err)
	}
}

// fetchWithRemediation fetches the weekly plan, remediating a missing
// plan by generating weekly suggestions, and a missing recommendation
// pool by generating base recommendations first. Intermediate failures
// are swallowed; only the final fetch failure surfaces.
func (s *PlannerService) fetchWithRemediation(ctx context.Context, weekStart string) (*domain.WeeklyPlanResponse, error) {
	resp, err := s.backend.FetchWeeklyPlan(ctx, weekStart)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, domain.ErrPlanNotFound) {
		return nil, err
	}

	log.Printf("[Planner] no plan for week %s, generating suggestions", weekStart)
	if _, genErr := s.backend.GenerateWeeklySuggestions(ctx); genErr != nil {
		if errors.Is(genErr, domain.ErrNoBaseRecommendations) {
			log.Printf("[Planner] no base recommendations, generating before retry")
			if _, recErr := s.backend.FetchBaseRecommendations(ctx, s.recCount); recErr != nil {
				log.Printf("[Planner] base recommendation generation failed: %v", recErr)
			}
			if _, genErr2 := s.backend.GenerateWeeklySuggestions(ctx); genErr2 != nil {
				log.Printf("[Planner] suggestion generation retry failed: %v", genErr2)
			}
		} else {
			log.Printf("[Planner] suggestion generation failed: %v", genErr)
		}
	}

	return s.backend.FetchWeeklyPlan(ctx, weekStart)
}

// poolFromRecommendations builds a recipe pool directly from base
// recommendations when the loaded week carries no recipes.
func (s *PlannerService) poolFromRecommendations(ctx context.Context) []domain.Recipe {
	recs, err := s.backend.FetchBaseRecommendations(ctx, s.recCount)
	if err != nil {
		log.Printf("[Planner] recommendation fallback failed: %v", err)
		return nil
	}

	seen := make(map[int]bool)
	var pool []domain.Recipe
	for _, raw := range recs {
		recipe := mealapi.ToRecipe(raw)
		if recipe.ID == 0 || seen[recipe.ID] {
			continue
		}
		seen[recipe.ID] = true
		pool = append(pool, recipe)
	}
	return pool
}

// dedupRecipePool flattens all non-empty meal slots across the week
// into a recipe list with duplicate ids removed. First occurrence wins
// and order is preserved.
func dedupRecipePool(plan *domain.WeekPlan) []domain.Recipe {
	if plan == nil {
		return nil
	}

	seen := make(map[int]bool)
	var pool []domain.Recipe
	for i := range plan.Days {
		day := &plan.Days[i]
		for _, recipe := range []*domain.Recipe{day.Breakfast, day.Lunch, day.Dinner} {
			if recipe == nil || seen[recipe.ID] {
				continue
			}
			seen[recipe.ID] = true
			pool = append(pool, *recipe)
		}
	}
	return pool
}

// WeekPlan returns the currently loaded plan, or nil
func (s *PlannerService) WeekPlan() *domain.WeekPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekPlan
}

// RecipePool returns the deduplicated recipes of the loaded week
func (s *PlannerService) RecipePool() []domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := make([]domain.Recipe, len(s.recipePool))
	copy(pool, s.recipePool)
	return pool
}

// IsLoading reports whether a load is currently in flight
func (s *PlannerService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// Err returns the error of the last failed load, or nil
func (s *PlannerService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// SelectedDate returns the UI cursor date
func (s *PlannerService) SelectedDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

// SetSelectedDate moves the UI cursor date
func (s *PlannerService) SetSelectedDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = date
}

// CurrentMonth returns the UI cursor month
func (s *PlannerService) CurrentMonth() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentMonth
}

// SetCurrentMonth moves the UI cursor month
func (s *PlannerService) SetCurrentMonth(month time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentMonth = month
}

// GetDayPlan returns the loaded plan's entry for the given date, or nil
func (s *PlannerService) GetDayPlan(date time.Time) *domain.DayPlan {
	target := FormatDate(date)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.weekPlan == nil {
		return nil
	}
	for i := range s.weekPlan.Days {
		if s.weekPlan.Days[i].Date == target {
			return &s.weekPlan.Days[i]
		}
	}
	return nil
}

// GetRecipeByID returns the pool recipe with the given id, or nil
func (s *PlannerService) GetRecipeByID(id int) *domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recipePool {
		if s.recipePool[i].ID == id {
			recipe := s.recipePool[i]
			return &recipe
		}
	}
	return nil
}

// StatsForMonth aggregates statistics over the loaded week plan
func (s *PlannerService) StatsForMonth() domain.PlannerStats {
	s.mu.Lock()
	plan := s.weekPlan
	s.mu.Unlock()
	return StatsForMonth(plan)
}
