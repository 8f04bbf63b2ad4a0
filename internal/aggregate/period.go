package aggregate

import (
	"time"

	"github.com/GregMSThompson/expense-tracker/internal/dto"
)

// DayStart truncates t to midnight in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// WeekOf returns the Sunday-to-Saturday week containing now.
func WeekOf(now time.Time) dto.Window {
	sunday := DayStart(now).AddDate(0, 0, -int(now.Weekday()))
	return dto.Window{Start: sunday, End: dayEnd(sunday.AddDate(0, 0, 6))}
}

// MonthOf returns the calendar month containing now.
func MonthOf(now time.Time) dto.Window {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return dto.Window{Start: first, End: first.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// PeriodWindow resolves "week" or "month"; ok is false otherwise.
func PeriodWindow(period string, now time.Time) (w dto.Window, ok bool) {
	switch period {
	case "week":
		return WeekOf(now), true
	case "month":
		return MonthOf(now), true
	}
	return dto.Window{}, false
}
