package domain

import "time"

// Difficulty levels as the backend reports them.
const (
	DifficultyEasy   = "Fácil"
	DifficultyMedium = "Medio"
	DifficultyHard   = "Difícil"
)

// MealType identifies one of the three meal slots in a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// Valid reports whether m is one of the three known meal slots.
func (m MealType) Valid() bool {
	return m == MealBreakfast || m == MealLunch || m == MealDinner
}

// Recipe represents a recipe as shown in the planner. Weekly-plan
// responses only carry id, name and emoji, so recipes materialized from
// them have zero time/calories until full detail is fetched elsewhere.
type Recipe struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Time         int      `json:"time"` // preparation time in minutes
	Calories     int      `json:"calories"`
	Difficulty   string   `json:"difficulty"`
	Icon         string   `json:"icon"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
}

// DayPlan holds the planned recipes for a single calendar day. Any of
// the three slots may be empty.
type DayPlan struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Breakfast *Recipe `json:"breakfast,omitempty"`
	Lunch     *Recipe `json:"lunch,omitempty"`
	Dinner    *Recipe `json:"dinner,omitempty"`
}

// Meal returns the recipe in the given slot, or nil.
func (d *DayPlan) Meal(mealType MealType) *Recipe {
	switch mealType {
	case MealBreakfast:
		return d.Breakfast
	case MealLunch:
		return d.Lunch
	case MealDinner:
		return d.Dinner
	}
	return nil
}

// HasMeals reports whether at least one meal slot is filled.
func (d *DayPlan) HasMeals() bool {
	return d.Breakfast != nil || d.Lunch != nil || d.Dinner != nil
}

// WeekPlan is a 7-day planning window for one user. Days always holds
// exactly 7 entries with consecutive dates from StartDate through
// EndDate. A WeekPlan is replaced wholesale on each load, never
// mutated field-by-field.
type WeekPlan struct {
	UserID    string    `json:"userId"`
	StartDate string    `json:"startDate"` // YYYY-MM-DD
	EndDate   string    `json:"endDate"`   // StartDate + 6 days
	Days      []DayPlan `json:"days"`
}

// Contains reports whether the given date falls inside the plan's
// [StartDate, EndDate] range. Dates compare lexicographically since
// they are zero-padded ISO strings.
func (w *WeekPlan) Contains(date string) bool {
	return date >= w.StartDate && date <= w.EndDate
}

// PlannerStats summarizes cooking activity over a loaded week plan.
type PlannerStats struct {
	TotalCookingDays      int    `json:"totalCookingDays"`
	TotalRecipes          int    `json:"totalRecipes"`
	AverageCaloriesPerDay int    `json:"averageCaloriesPerDay"`
	MostUsedDifficulty    string `json:"mostUsedDifficulty"`
}

// CachedPlan is a cached weekly plan together with the raw backend
// response it was built from.
type CachedPlan struct {
	Response *WeeklyPlanResponse `json:"response"`
	WeekPlan *WeekPlan           `json:"weekPlan"`
	CachedAt time.Time           `json:"cachedAt"`
}

// DateFormat is the wire format for all planner dates.
const DateFormat = "2006-01-02"
