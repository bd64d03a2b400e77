// Package calmath provides the pure calendar arithmetic used by the
// planner, habit, and dashboard logic. All functions operate on local
// wall-clock semantics: months are 1-based (time.Month), weeks start on
// Sunday, and no function returns an error.
package calmath

import "time"

// GridWeeks and GridDays fix the month view at 6 rows of 7 days, so every
// month renders as exactly 42 cells regardless of its length.
const (
	GridWeeks = 6
	GridDays  = 7
)

// StartOfDay returns midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight on the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddDays shifts t by n calendar days, preserving time of day.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths shifts t by n months, clamping the day of month when the
// target month is shorter. Jan 31 + 1 month lands on the last day of
// February instead of overflowing into March.
func AddMonths(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, n, 0)
	day := t.Day()
	if last := DaysInMonth(firstOfTarget); day > last {
		day = last
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	first := StartOfMonth(t)
	return first.AddDate(0, 1, -1).Day()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateFromWeekSlot resolves a (day index, hour) slot of the week starting
// at weekStart into a concrete timestamp at (hour, 0).
func DateFromWeekSlot(weekStart time.Time, dayIndex, hour int) time.Time {
	d := AddDays(weekStart, dayIndex)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

// MonthGrid returns the 6x7 matrix of calendar days for the month
// containing t, beginning at the Sunday on or before the 1st.
func MonthGrid(t time.Time) [GridWeeks][GridDays]time.Time {
	var grid [GridWeeks][GridDays]time.Time
	cell := StartOfWeek(StartOfMonth(t))
	for w := 0; w < GridWeeks; w++ {
		for d := 0; d < GridDays; d++ {
			grid[w][d] = cell
			cell = AddDays(cell, 1)
		}
	}
	return grid
}
