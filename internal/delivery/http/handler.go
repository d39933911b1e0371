package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/platoplan/planner/internal/domain"
	"github.com/platoplan/planner/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	planner     *usecase.PlannerService
	suggestions *usecase.SuggestionService
}

// NewHandler creates a new HTTP handler
func NewHandler(planner *usecase.PlannerService, suggestions *usecase.SuggestionService) *Handler {
	return &Handler{
		planner:     planner,
		suggestions: suggestions,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "platoplan-planner",
		"version": "1.0.0",
	})
}

// GetWeekPlan serves the weekly plan for the week containing ?date=
// (default: today), loading from cache or backend as needed.
func (h *Handler) GetWeekPlan(c *gin.Context) {
	date, ok := h.optionalDate(c)
	if !ok {
		return
	}

	h.planner.EnsureCurrentWeek(c.Request.Context())

	plan, err := h.planner.WeekPlanFor(c.Request.Context(), date)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekPlan":   plan,
		"recipePool": h.planner.RecipePool(),
	})
}

// RefreshWeekPlan drops the user's cache entries and reloads
func (h *Handler) RefreshWeekPlan(c *gin.Context) {
	h.planner.RefreshWeekPlan(c.Request.Context())

	if err := h.planner.Err(); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekPlan":   h.planner.WeekPlan(),
		"recipePool": h.planner.RecipePool(),
	})
}

// GetDayPlan serves a single day of the loaded plan with any
// session-local meal overrides applied.
func (h *Handler) GetDayPlan(c *gin.Context) {
	date, err := time.Parse(domain.DateFormat, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}

	day := h.planner.GetDayPlan(date)
	if day == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no plan for requested date"})
		return
	}

	// Apply overrides without touching the loaded plan
	out := *day
	if r := h.suggestions.OverrideFor(date, domain.MealBreakfast); r != nil {
		out.Breakfast = r
	}
	if r := h.suggestions.OverrideFor(date, domain.MealLunch); r != nil {
		out.Lunch = r
	}
	if r := h.suggestions.OverrideFor(date, domain.MealDinner); r != nil {
		out.Dinner = r
	}

	c.JSON(http.StatusOK, out)
}

// GetStats serves aggregated statistics over the loaded week plan
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.planner.StatsForMonth())
}

// GetSuggestions serves up to 3 candidate recipes for a meal slot.
// ?meal= is required; ?exclude= is a comma-separated id list; ?date=
// gates availability against the suggestion horizon.
func (h *Handler) GetSuggestions(c *gin.Context) {
	mealType := domain.MealType(c.Query("meal"))
	if !mealType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal must be breakfast, lunch or dinner"})
		return
	}

	exclude, err := parseIDList(c.Query("exclude"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exclude must be a comma-separated id list"})
		return
	}

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (YYYY-MM-DD)"})
			return
		}
		if !h.suggestions.SuggestionsAvailable(date, time.Now()) {
			c.JSON(http.StatusOK, gin.H{"available": false, "suggestions": []domain.Recipe{}})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"available":   true,
		"suggestions": h.suggestions.AISuggestions(mealType, exclude),
	})
}

// changeMealRequest is the body of POST /planner/meals/change
type changeMealRequest struct {
	Date      string `json:"date" binding:"required"`
	MealType  string `json:"mealType" binding:"required"`
	CurrentID int    `json:"currentId"`
}

// ChangeMeal picks a replacement recipe for a meal slot and records it
// as a session-local override.
func (h *Handler) ChangeMeal(c *gin.Context) {
	var req changeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (YYYY-MM-DD)"})
		return
	}
	mealType := domain.MealType(req.MealType)
	if !mealType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mealType must be breakfast, lunch or dinner"})
		return
	}

	replacement := h.suggestions.ChangeMeal(date, mealType, req.CurrentID)
	if replacement == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no alternative recipe available"})
		return
	}

	c.JSON(http.StatusOK, replacement)
}

// GetRecipeByID serves a recipe from the loaded pool
func (h *Handler) GetRecipeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe := h.planner.GetRecipeByID(id)
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found in pool"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// ClearCache drops the entire plan cache
func (h *Handler) ClearCache(c *gin.Context) {
	h.planner.ClearCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// optionalDate parses ?date= when present; a zero time means "today".
// Writes the error response itself and returns ok=false on bad input.
func (h *Handler) optionalDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, true
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (YYYY-MM-DD)"})
		return time.Time{}, false
	}
	return date, true
}

// parseIDList parses a comma-separated list of recipe ids
func parseIDList(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// errorStatus maps domain errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
