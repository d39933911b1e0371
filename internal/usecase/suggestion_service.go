package usecase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/platoplan/planner/internal/domain"
)

const maxSuggestions = 3

// mealKeywords associates each meal slot with name fragments that mark
// a pool recipe as a fitting candidate. Matching is case-insensitive.
var mealKeywords = map[domain.MealType][]string{
	domain.MealBreakfast: {"desayuno", "toast", "huevo", "smoothie", "avena", "tostada"},
	domain.MealLunch:     {"almuerzo", "ensalada", "pasta", "sofrito", "arroz", "taco"},
	domain.MealDinner:    {"cena", "pollo", "salmón", "curry", "pescado", "sopa"},
}

// poolProvider supplies the candidate recipe set for suggestions.
// Satisfied by PlannerService.
type poolProvider interface {
	RecipePool() []domain.Recipe
}

// SuggestionService answers per-meal-slot recipe suggestions from the
// loaded recipe pool and keeps session-local meal overrides recorded by
// the "change this meal" action. Overrides are never persisted to cache
// or backend.
type SuggestionService struct {
	pool        poolProvider
	horizonDays int

	mu        sync.Mutex
	overrides map[string]domain.Recipe // keyed by "<date>|<mealType>"
}

// NewSuggestionService creates a suggestion service over the given pool
func NewSuggestionService(pool poolProvider, horizonDays int) *SuggestionService {
	if horizonDays <= 0 {
		horizonDays = 7
	}
	return &SuggestionService{
		pool:        pool,
		horizonDays: horizonDays,
		overrides:   make(map[string]domain.Recipe),
	}
}

// AISuggestions returns up to 3 candidate recipes for the given meal
// slot, skipping excluded ids. Recipes whose name matches the slot's
// keywords are preferred; when none match, the full exclude-filtered
// pool is used instead. Pool order is preserved.
func (s *SuggestionService) AISuggestions(mealType domain.MealType, exclude []int) []domain.Recipe {
	excluded := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	var filtered []domain.Recipe
	for _, recipe := range s.pool.RecipePool() {
		if !excluded[recipe.ID] {
			filtered = append(filtered, recipe)
		}
	}

	keywords := mealKeywords[mealType]
	var matched []domain.Recipe
	for _, recipe := range filtered {
		if nameMatchesAny(recipe.Name, keywords) {
			matched = append(matched, recipe)
		}
	}
	if len(matched) == 0 {
		matched = filtered
	}

	if len(matched) > maxSuggestions {
		matched = matched[:maxSuggestions]
	}
	return matched
}

// ChangeMeal picks a replacement recipe for the displayed one and
// records it as the override for (date, mealType). Returns nil when the
// pool offers no alternative.
func (s *SuggestionService) ChangeMeal(date time.Time, mealType domain.MealType, currentID int) *domain.Recipe {
	candidates := s.AISuggestions(mealType, []int{currentID})
	if len(candidates) == 0 {
		return nil
	}

	replacement := candidates[0]
	s.mu.Lock()
	s.overrides[overrideKey(date, mealType)] = replacement
	s.mu.Unlock()

	return &replacement
}

// OverrideFor returns the session-local override recorded for
// (date, mealType), or nil when the planned recipe still applies.
func (s *SuggestionService) OverrideFor(date time.Time, mealType domain.MealType) *domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recipe, ok := s.overrides[overrideKey(date, mealType)]; ok {
		return &recipe
	}
	return nil
}

// ClearOverrides drops all recorded meal overrides
func (s *SuggestionService) ClearOverrides() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = make(map[string]domain.Recipe)
}

// SuggestionsAvailable reports whether suggestions may be offered for a
// slot on the given date: today, any past date, or a future date within
// the horizon. Beyond it the UI shows a "not yet available" state.
func (s *SuggestionService) SuggestionsAvailable(date, now time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if !day.After(today) {
		return true
	}
	return !day.After(today.AddDate(0, 0, s.horizonDays))
}

func overrideKey(date time.Time, mealType domain.MealType) string {
	return fmt.Sprintf("%s|%s", date.Format(domain.DateFormat), mealType)
}

func nameMatchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
