package calmath_test

import (
	"testing"
	"time"

	"dayplanner/pkg/calmath"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	got := calmath.StartOfDay(date(2024, time.March, 4, 15, 30))
	want := date(2024, time.March, 4, 0, 0)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "Wednesday rolls back to Sunday",
			in:   date(2024, time.March, 6, 10, 0), // Wed
			want: date(2024, time.March, 3, 0, 0),  // Sun
		},
		{
			name: "Sunday stays on Sunday",
			in:   date(2024, time.March, 3, 23, 59),
			want: date(2024, time.March, 3, 0, 0),
		},
		{
			name: "Week spanning a month boundary",
			in:   date(2024, time.March, 1, 9, 0),     // Fri
			want: date(2024, time.February, 25, 0, 0), // Sun
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calmath.StartOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{
			name: "Jan 31 plus one month clamps to leap February",
			in:   date(2024, time.January, 31, 9, 0),
			n:    1,
			want: date(2024, time.February, 29, 9, 0),
		},
		{
			name: "Jan 31 plus one month clamps to non-leap February",
			in:   date(2023, time.January, 31, 9, 0),
			n:    1,
			want: date(2023, time.February, 28, 9, 0),
		},
		{
			name: "Mar 31 plus one month clamps to Apr 30",
			in:   date(2024, time.March, 31, 0, 0),
			n:    1,
			want: date(2024, time.April, 30, 0, 0),
		},
		{
			name: "Mid-month days are untouched",
			in:   date(2024, time.March, 15, 12, 30),
			n:    2,
			want: date(2024, time.May, 15, 12, 30),
		},
		{
			name: "Negative shift clamps too",
			in:   date(2024, time.March, 31, 8, 0),
			n:    -1,
			want: date(2024, time.February, 29, 8, 0),
		},
		{
			name: "Year boundary",
			in:   date(2023, time.December, 31, 8, 0),
			n:    2,
			want: date(2024, time.February, 29, 8, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calmath.AddMonths(tt.in, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := date(2024, time.March, 4, 0, 0)
	b := date(2024, time.March, 4, 23, 59)
	c := date(2024, time.March, 5, 0, 0)

	if !calmath.SameDay(a, b) {
		t.Errorf("expected %v and %v to be the same day", a, b)
	}
	if calmath.SameDay(a, c) {
		t.Errorf("expected %v and %v to be different days", a, c)
	}
}

func TestDateFromWeekSlot(t *testing.T) {
	weekStart := date(2024, time.March, 3, 0, 0) // Sunday
	got := calmath.DateFromWeekSlot(weekStart, 1, 14)
	want := date(2024, time.March, 4, 14, 0) // Monday 14:00
	if !got.Equal(want) {
		t.Errorf("DateFromWeekSlot() = %v, want %v", got, want)
	}
}

func TestMonthGrid(t *testing.T) {
	months := []time.Time{
		date(2024, time.February, 10, 0, 0), // leap February
		date(2023, time.February, 1, 0, 0),  // 28-day month
		date(2024, time.March, 31, 0, 0),    // 31-day month
		date(2024, time.September, 1, 0, 0), // month starting on Sunday
	}

	for _, m := range months {
		grid := calmath.MonthGrid(m)

		count := 0
		prev := grid[0][0].AddDate(0, 0, -1)
		for w := 0; w < calmath.GridWeeks; w++ {
			for d := 0; d < calmath.GridDays; d++ {
				cell := grid[w][d]
				if !cell.Equal(prev.AddDate(0, 0, 1)) {
					t.Fatalf("grid for %v is not consecutive at [%d][%d]: %v after %v", m, w, d, cell, prev)
				}
				prev = cell
				count++
			}
		}
		if count != 42 {
			t.Errorf("grid for %v has %d cells, want 42", m, count)
		}

		first := grid[0][0]
		if first.Weekday() != time.Sunday {
			t.Errorf("grid for %v starts on %v, want Sunday", m, first.Weekday())
		}
		firstOfMonth := calmath.StartOfMonth(m)
		if first.After(firstOfMonth) {
			t.Errorf("grid for %v starts at %v, after the 1st %v", m, first, firstOfMonth)
		}
		if firstOfMonth.Sub(first) >= 7*24*time.Hour {
			t.Errorf("grid for %v starts more than a week before the 1st", m)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := calmath.DaysInMonth(date(2024, time.February, 1, 0, 0)); got != 29 {
		t.Errorf("DaysInMonth(Feb 2024) = %d, want 29", got)
	}
	if got := calmath.DaysInMonth(date(2023, time.February, 15, 0, 0)); got != 28 {
		t.Errorf("DaysInMonth(Feb 2023) = %d, want 28", got)
	}
	if got := calmath.DaysInMonth(date(2024, time.April, 30, 0, 0)); got != 30 {
		t.Errorf("DaysInMonth(Apr 2024) = %d, want 30", got)
	}
}
