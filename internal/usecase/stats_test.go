package usecase

import (
	"testing"

	"github.com/platoplan/planner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatsForMonth(t *testing.T) {
	tests := []struct {
		name string
		plan *domain.WeekPlan
		want domain.PlannerStats
	}{
		{
			name: "nil plan",
			plan: nil,
			want: domain.PlannerStats{MostUsedDifficulty: "Fácil"},
		},
		{
			name: "week with no meals",
			plan: &domain.WeekPlan{
				StartDate: "2025-10-13",
				EndDate:   "2025-10-19",
				Days: []domain.DayPlan{
					{Date: "2025-10-13"}, {Date: "2025-10-14"}, {Date: "2025-10-15"},
					{Date: "2025-10-16"}, {Date: "2025-10-17"}, {Date: "2025-10-18"},
					{Date: "2025-10-19"},
				},
			},
			want: domain.PlannerStats{MostUsedDifficulty: "Fácil"},
		},
		{
			name: "mixed week",
			plan: &domain.WeekPlan{
				Days: []domain.DayPlan{
					{
						Date:      "2025-10-13",
						Breakfast: &domain.Recipe{ID: 1, Calories: 150, Difficulty: "Fácil"},
						Lunch:     &domain.Recipe{ID: 2, Calories: 420, Difficulty: "Medio"},
						Dinner:    &domain.Recipe{ID: 3, Calories: 350, Difficulty: "Medio"},
					},
					{Date: "2025-10-14"},
					{
						Date:  "2025-10-15",
						Lunch: &domain.Recipe{ID: 2, Calories: 420, Difficulty: "Medio"},
					},
				},
			},
			want: domain.PlannerStats{
				TotalCookingDays: 2,
				TotalRecipes:     4,
				// (150+420+350+420)/2 = 670
				AverageCaloriesPerDay: 670,
				MostUsedDifficulty:    "Medio",
			},
		},
		{
			name: "difficulty tie goes to first encountered",
			plan: &domain.WeekPlan{
				Days: []domain.DayPlan{
					{
						Date:      "2025-10-13",
						Breakfast: &domain.Recipe{ID: 1, Calories: 100, Difficulty: "Medio"},
						Lunch:     &domain.Recipe{ID: 2, Calories: 200, Difficulty: "Fácil"},
					},
				},
			},
			want: domain.PlannerStats{
				TotalCookingDays:      1,
				TotalRecipes:          2,
				AverageCaloriesPerDay: 300,
				MostUsedDifficulty:    "Medio",
			},
		},
		{
			name: "average rounds to nearest integer",
			plan: &domain.WeekPlan{
				Days: []domain.DayPlan{
					{Date: "2025-10-13", Breakfast: &domain.Recipe{ID: 1, Calories: 100, Difficulty: "Fácil"}},
					{Date: "2025-10-14", Breakfast: &domain.Recipe{ID: 2, Calories: 101, Difficulty: "Fácil"}},
					{Date: "2025-10-15", Breakfast: &domain.Recipe{ID: 3, Calories: 100, Difficulty: "Fácil"}},
				},
			},
			want: domain.PlannerStats{
				TotalCookingDays: 3,
				TotalRecipes:     3,
				// 301/3 = 100.33 -> 100
				AverageCaloriesPerDay: 100,
				MostUsedDifficulty:    "Fácil",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatsForMonth(tt.plan))
		})
	}
}
