package usecase

import (
	"testing"
	"time"
)

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC), "2025-10-13"},
		{"tuesday", time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), "2025-10-13"},
		{"thursday", time.Date(2025, 10, 16, 23, 59, 0, 0, time.UTC), "2025-10-13"},
		{"sunday belongs to the preceding monday", time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC), "2025-10-13"},
		{"next monday starts a new week", time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), "2025-10-20"},
		{"year boundary", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "2025-12-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStartOf(tt.date)
			if FormatDate(got) != tt.want {
				t.Errorf("WeekStartOf(%s) = %s, want %s", tt.date, FormatDate(got), tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("WeekStartOf(%s) not normalized to midnight: %s", tt.date, got)
			}
		})
	}
}

func TestWeekStartOf_Idempotent(t *testing.T) {
	date := time.Date(2025, 10, 16, 18, 45, 0, 0, time.UTC)
	once := WeekStartOf(date)
	twice := WeekStartOf(once)

	if !once.Equal(twice) {
		t.Errorf("WeekStartOf not idempotent: %s != %s", once, twice)
	}
}
