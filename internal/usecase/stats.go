package usecase

import (
	"math"

	"github.com/platoplan/planner/internal/domain"
)

// StatsForMonth aggregates cooking statistics over a loaded week plan.
// A nil plan or a plan with no filled meal slots yields zero counts and
// the default difficulty.
func StatsForMonth(plan *domain.WeekPlan) domain.PlannerStats {
	stats := domain.PlannerStats{
		MostUsedDifficulty: domain.DifficultyEasy,
	}
	if plan == nil {
		return stats
	}

	totalCalories := 0
	difficultyCount := make(map[string]int)
	var difficultyOrder []string

	for i := range plan.Days {
		day := &plan.Days[i]
		if day.HasMeals() {
			stats.TotalCookingDays++
		}

		for _, recipe := range []*domain.Recipe{day.Breakfast, day.Lunch, day.Dinner} {
			if recipe == nil {
				continue
			}
			// A recipe repeated across days/slots counts each time
			stats.TotalRecipes++
			totalCalories += recipe.Calories

			if recipe.Difficulty != "" {
				if _, seen := difficultyCount[recipe.Difficulty]; !seen {
					difficultyOrder = append(difficultyOrder, recipe.Difficulty)
				}
				difficultyCount[recipe.Difficulty]++
			}
		}
	}

	if stats.TotalCookingDays > 0 {
		stats.AverageCaloriesPerDay = int(math.Round(float64(totalCalories) / float64(stats.TotalCookingDays)))
	}

	// Highest count wins; ties go to the first-encountered difficulty
	best := 0
	for _, difficulty := range difficultyOrder {
		if difficultyCount[difficulty] > best {
			best = difficultyCount[difficulty]
			stats.MostUsedDifficulty = difficulty
		}
	}

	return stats
}
