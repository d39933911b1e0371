package mealapi

import (
	"time"

	"github.com/platoplan/planner/internal/domain"
)

// defaultIcon is used when the backend omits a recipe emoji
const defaultIcon = "🍽️"

// ToWeekPlan converts a weekly plan response to the domain WeekPlan.
// It always materializes exactly 7 days from Semana through Semana+6,
// regardless of how many dates the response actually populated. A meal
// slot is filled only when the wire entry carries a recipe id.
func ToWeekPlan(resp *domain.WeeklyPlanResponse, userID string) (*domain.WeekPlan, error) {
	start, err := time.Parse(domain.DateFormat, resp.Semana)
	if err != nil {
		return nil, err
	}

	days := make([]domain.DayPlan, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(domain.DateFormat)
		day := domain.DayPlan{Date: date}

		if menu, ok := resp.Menus[date]; ok {
			day.Breakfast = toStubRecipe(menu.Desayuno)
			day.Lunch = toStubRecipe(menu.Almuerzo)
			day.Dinner = toStubRecipe(menu.Cena)
		}

		days[i] = day
	}

	return &domain.WeekPlan{
		UserID:    userID,
		StartDate: start.Format(domain.DateFormat),
		EndDate:   start.AddDate(0, 0, 6).Format(domain.DateFormat),
		Days:      days,
	}, nil
}

// toStubRecipe builds a minimal Recipe from a weekly plan meal entry.
// The weekly endpoint does not return full recipe detail, so time and
// calories stay zero until detail is fetched elsewhere.
func toStubRecipe(meal *domain.WireMeal) *domain.Recipe {
	if meal == nil || meal.RecetaID == 0 {
		return nil
	}

	icon := meal.Emoji
	if icon == "" {
		icon = defaultIcon
	}

	return &domain.Recipe{
		ID:         meal.RecetaID,
		Name:       meal.RecetaNombre,
		Difficulty: domain.DifficultyEasy,
		Icon:       icon,
	}
}

// ToRecipe converts a raw recommendation record to the domain Recipe.
// The backend is inconsistent about field names and difficulty
// encoding, so both variants are handled here.
func ToRecipe(raw domain.WireRecipe) domain.Recipe {
	prep := raw.Tiempo
	if prep == 0 {
		prep = raw.TiempoPrep
	}

	difficulty := raw.NivelDificultad
	switch raw.Nivel {
	case 1:
		difficulty = domain.DifficultyEasy
	case 2:
		difficulty = domain.DifficultyMedium
	case 3:
		difficulty = domain.DifficultyHard
	}
	if difficulty == "" {
		difficulty = domain.DifficultyEasy
	}

	icon := raw.Emoji
	if icon == "" {
		icon = defaultIcon
	}

	return domain.Recipe{
		ID:          raw.ID,
		Name:        raw.Nombre,
		Time:        prep,
		Calories:    raw.Calorias,
		Difficulty:  difficulty,
		Icon:        icon,
		Description: raw.Razon,
	}
}
