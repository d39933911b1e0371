package usecase

import (
	"time"

	"github.com/platoplan/planner/internal/domain"
)

// WeekStartOf returns the canonical start of the planning week
// containing date: the Monday of that week, normalized to midnight.
// Every week computation in the system goes through this function so
// the convention lives in exactly one place.
func WeekStartOf(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	// time.Weekday puts Sunday at 0; shift so Monday is 0
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// FormatDate renders a date in the wire format (YYYY-MM-DD).
func FormatDate(date time.Time) string {
	return date.Format(domain.DateFormat)
}
