package domain

// WireMeal is a single meal slot entry in the weekly plan response.
// receta_id is zero when the backend left the slot unassigned.
type WireMeal struct {
	RecetaID     int    `json:"receta_id,omitempty"`
	RecetaNombre string `json:"receta_nombre,omitempty"`
	Emoji        string `json:"emoji,omitempty"`
	EsSugerida   bool   `json:"es_sugerida,omitempty"`
}

// WireDayMenu groups the three meal slots of one date.
type WireDayMenu struct {
	Desayuno *WireMeal `json:"desayuno,omitempty"`
	Almuerzo *WireMeal `json:"almuerzo,omitempty"`
	Cena     *WireMeal `json:"cena,omitempty"`
}

// WeeklyPlanResponse is the backend's weekly planner payload. Menus is
// keyed by date (YYYY-MM-DD) and may cover fewer than 7 dates; the
// mapper always materializes the full week from Semana.
type WeeklyPlanResponse struct {
	Semana string                 `json:"semana"`
	Menus  map[string]WireDayMenu `json:"menus"`
}

// WireRecipe is a raw recommendation record from the suggestions
// endpoint. The backend is inconsistent between numeric nivel and a
// nivel_dificultad label, and between tiempo and tiempo_preparacion.
type WireRecipe struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	Tiempo          int    `json:"tiempo,omitempty"`
	TiempoPrep      int    `json:"tiempo_preparacion,omitempty"`
	Calorias        int    `json:"calorias,omitempty"`
	Nivel           int    `json:"nivel,omitempty"`
	NivelDificultad string `json:"nivel_dificultad,omitempty"`
	Emoji           string `json:"emoji,omitempty"`
	Razon           string `json:"razon,omitempty"`
}
