package mealapi

import (
	"testing"

	"github.com/platoplan/planner/internal/domain"
)

func TestToWeekPlan_FullWeekShape(t *testing.T) {
	// The response only populates two dates; the plan must still carry
	// all 7 consecutive days.
	resp := &domain.WeeklyPlanResponse{
		Semana: "2025-10-13",
		Menus: map[string]domain.WireDayMenu{
			"2025-10-13": {
				Desayuno: &domain.WireMeal{RecetaID: 1, RecetaNombre: "Avocado Toast", Emoji: "🥑"},
				Cena:     &domain.WireMeal{RecetaID: 2, RecetaNombre: "Pollo Teriyaki", Emoji: "🍗"},
			},
			"2025-10-15": {
				Almuerzo: &domain.WireMeal{RecetaID: 3, RecetaNombre: "Ensalada César", Emoji: "🥗"},
			},
		},
	}

	plan, err := ToWeekPlan(resp, "user123")
	if err != nil {
		t.Fatalf("ToWeekPlan() error = %v", err)
	}

	if len(plan.Days) != 7 {
		t.Fatalf("len(Days) = %d, want 7", len(plan.Days))
	}
	if plan.StartDate != "2025-10-13" || plan.EndDate != "2025-10-19" {
		t.Errorf("range = [%s, %s], want [2025-10-13, 2025-10-19]", plan.StartDate, plan.EndDate)
	}
	if plan.UserID != "user123" {
		t.Errorf("UserID = %s, want user123", plan.UserID)
	}

	wantDates := []string{
		"2025-10-13", "2025-10-14", "2025-10-15", "2025-10-16",
		"2025-10-17", "2025-10-18", "2025-10-19",
	}
	for i, want := range wantDates {
		if plan.Days[i].Date != want {
			t.Errorf("Days[%d].Date = %s, want %s", i, plan.Days[i].Date, want)
		}
	}

	if plan.Days[0].Breakfast == nil || plan.Days[0].Breakfast.ID != 1 {
		t.Errorf("Days[0].Breakfast = %+v, want recipe 1", plan.Days[0].Breakfast)
	}
	if plan.Days[0].Lunch != nil {
		t.Errorf("Days[0].Lunch = %+v, want nil", plan.Days[0].Lunch)
	}
	if plan.Days[2].Lunch == nil || plan.Days[2].Lunch.ID != 3 {
		t.Errorf("Days[2].Lunch = %+v, want recipe 3", plan.Days[2].Lunch)
	}
	if plan.Days[1].HasMeals() || plan.Days[6].HasMeals() {
		t.Error("unpopulated dates should have empty meal slots")
	}
}

func TestToWeekPlan_EmptyMenus(t *testing.T) {
	resp := &domain.WeeklyPlanResponse{Semana: "2025-10-13"}

	plan, err := ToWeekPlan(resp, "user123")
	if err != nil {
		t.Fatalf("ToWeekPlan() error = %v", err)
	}

	if len(plan.Days) != 7 {
		t.Fatalf("len(Days) = %d, want 7", len(plan.Days))
	}
	for i, day := range plan.Days {
		if day.HasMeals() {
			t.Errorf("Days[%d] has meals, want empty", i)
		}
	}
}

func TestToWeekPlan_SlotWithoutRecipeID(t *testing.T) {
	// A slot entry without receta_id means the slot is unassigned
	resp := &domain.WeeklyPlanResponse{
		Semana: "2025-10-13",
		Menus: map[string]domain.WireDayMenu{
			"2025-10-13": {
				Desayuno: &domain.WireMeal{RecetaNombre: "ghost entry"},
			},
		},
	}

	plan, err := ToWeekPlan(resp, "user123")
	if err != nil {
		t.Fatalf("ToWeekPlan() error = %v", err)
	}
	if plan.Days[0].Breakfast != nil {
		t.Errorf("Breakfast = %+v, want nil for entry without receta_id", plan.Days[0].Breakfast)
	}
}

func TestToWeekPlan_StubDefaults(t *testing.T) {
	resp := &domain.WeeklyPlanResponse{
		Semana: "2025-10-13",
		Menus: map[string]domain.WireDayMenu{
			"2025-10-13": {
				Almuerzo: &domain.WireMeal{RecetaID: 7, RecetaNombre: "Pasta Carbonara"},
			},
		},
	}

	plan, err := ToWeekPlan(resp, "user123")
	if err != nil {
		t.Fatalf("ToWeekPlan() error = %v", err)
	}

	recipe := plan.Days[0].Lunch
	if recipe == nil {
		t.Fatal("Lunch = nil, want stub recipe")
	}
	if recipe.Time != 0 || recipe.Calories != 0 {
		t.Errorf("stub recipe time/calories = %d/%d, want 0/0", recipe.Time, recipe.Calories)
	}
	if recipe.Difficulty != domain.DifficultyEasy {
		t.Errorf("stub recipe difficulty = %s, want %s", recipe.Difficulty, domain.DifficultyEasy)
	}
	if recipe.Icon != defaultIcon {
		t.Errorf("stub recipe icon = %s, want default %s", recipe.Icon, defaultIcon)
	}
}

func TestToWeekPlan_InvalidSemana(t *testing.T) {
	resp := &domain.WeeklyPlanResponse{Semana: "not-a-date"}

	if _, err := ToWeekPlan(resp, "user123"); err == nil {
		t.Error("ToWeekPlan() error = nil, want parse error")
	}
}

func TestToRecipe(t *testing.T) {
	tests := []struct {
		name string
		raw  domain.WireRecipe
		want domain.Recipe
	}{
		{
			name: "numeric nivel easy",
			raw:  domain.WireRecipe{ID: 1, Nombre: "Bruschetta", Tiempo: 10, Calorias: 150, Nivel: 1, Emoji: "🥖"},
			want: domain.Recipe{ID: 1, Name: "Bruschetta", Time: 10, Calories: 150, Difficulty: "Fácil", Icon: "🥖"},
		},
		{
			name: "numeric nivel medium",
			raw:  domain.WireRecipe{ID: 7, Nombre: "Pasta Carbonara", Tiempo: 25, Calorias: 420, Nivel: 2, Emoji: "🍝"},
			want: domain.Recipe{ID: 7, Name: "Pasta Carbonara", Time: 25, Calories: 420, Difficulty: "Medio", Icon: "🍝"},
		},
		{
			name: "numeric nivel hard",
			raw:  domain.WireRecipe{ID: 9, Nombre: "Ratatouille", Nivel: 3, Emoji: "🍆"},
			want: domain.Recipe{ID: 9, Name: "Ratatouille", Difficulty: "Difícil", Icon: "🍆"},
		},
		{
			name: "label difficulty preserved",
			raw:  domain.WireRecipe{ID: 2, Nombre: "Sofrito", NivelDificultad: "Medio", Emoji: "🥘"},
			want: domain.Recipe{ID: 2, Name: "Sofrito", Difficulty: "Medio", Icon: "🥘"},
		},
		{
			name: "defaults when everything missing",
			raw:  domain.WireRecipe{ID: 3, Nombre: "Misterio"},
			want: domain.Recipe{ID: 3, Name: "Misterio", Difficulty: "Fácil", Icon: defaultIcon},
		},
		{
			name: "tiempo_preparacion fallback and razon as description",
			raw:  domain.WireRecipe{ID: 4, Nombre: "Curry", TiempoPrep: 35, Nivel: 2, Emoji: "🍛", Razon: "Usa tu inventario"},
			want: domain.Recipe{ID: 4, Name: "Curry", Time: 35, Difficulty: "Medio", Icon: "🍛", Description: "Usa tu inventario"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRecipe(tt.raw)
			if got.ID != tt.want.ID || got.Name != tt.want.Name || got.Time != tt.want.Time ||
				got.Calories != tt.want.Calories || got.Difficulty != tt.want.Difficulty ||
				got.Icon != tt.want.Icon || got.Description != tt.want.Description {
				t.Errorf("ToRecipe() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
