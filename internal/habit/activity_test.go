package habit

import (
	"testing"
	"time"

	"dayplanner/internal/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 30, 0, 0, time.UTC)
}

func TestActiveOnDaily(t *testing.T) {
	h := Habit{
		Frequency: model.FrequencyDaily,
		CreatedAt: day(2024, time.March, 1),
	}

	if !ActiveOn(h, day(2024, time.March, 1)) {
		t.Errorf("daily habit must be due on its creation day")
	}
	if !ActiveOn(h, day(2024, time.July, 19)) {
		t.Errorf("daily habit must be due on any later day")
	}
	if ActiveOn(h, day(2024, time.February, 29)) {
		t.Errorf("no habit is due before its creation day")
	}
}

func TestActiveOnWeekly(t *testing.T) {
	created := day(2024, time.March, 1) // Friday
	h := Habit{
		Frequency:  model.FrequencyWeekly,
		DaysOfWeek: []int{1, 3, 5}, // Mon, Wed, Fri
		CreatedAt:  created,
	}

	tcs := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"Monday matches", day(2024, time.March, 4), true},
		{"Tuesday does not", day(2024, time.March, 5), false},
		{"Wednesday matches", day(2024, time.March, 6), true},
		{"Friday matches", day(2024, time.March, 8), true},
		{"Sunday does not", day(2024, time.March, 10), false},
		{"matching weekday before creation", day(2024, time.February, 26), false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := ActiveOn(h, tc.d); got != tc.want {
				t.Errorf("ActiveOn(%v) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}

	t.Run("empty weekday set is never active", func(t *testing.T) {
		empty := Habit{Frequency: model.FrequencyWeekly, CreatedAt: created}
		if ActiveOn(empty, day(2024, time.March, 4)) {
			t.Errorf("empty DaysOfWeek must never match")
		}
	})
}

func TestActiveOnMonthly(t *testing.T) {
	t.Run("fires on the creation day-of-month", func(t *testing.T) {
		h := Habit{
			Frequency: model.FrequencyMonthly,
			CreatedAt: day(2024, time.January, 15),
		}
		if !ActiveOn(h, day(2024, time.February, 15)) {
			t.Errorf("expected due on the 15th")
		}
		if ActiveOn(h, day(2024, time.February, 14)) {
			t.Errorf("not due on other days")
		}
	})

	t.Run("strict equality skips short months", func(t *testing.T) {
		h := Habit{
			Frequency: model.FrequencyMonthly,
			CreatedAt: day(2024, time.January, 31),
		}
		// February 2024 has 29 days: the habit never fires that month.
		for d := 1; d <= 29; d++ {
			if ActiveOn(h, day(2024, time.February, d)) {
				t.Fatalf("day-31 habit must not fire in February (day %d)", d)
			}
		}
		if !ActiveOn(h, day(2024, time.March, 31)) {
			t.Errorf("expected due again on March 31")
		}
	})
}

func TestActiveOnUnknownFrequency(t *testing.T) {
	h := Habit{
		Frequency: model.Frequency("FORTNIGHTLY"),
		CreatedAt: day(2024, time.January, 1),
	}
	if ActiveOn(h, day(2024, time.March, 4)) {
		t.Errorf("unknown frequency must never be due")
	}
}

func TestActiveOnCreationDayGuard(t *testing.T) {
	// Created late in the day; still due that same calendar day.
	created := time.Date(2024, time.March, 1, 23, 50, 0, 0, time.UTC)
	h := Habit{Frequency: model.FrequencyDaily, CreatedAt: created}

	if !ActiveOn(h, time.Date(2024, time.March, 1, 0, 5, 0, 0, time.UTC)) {
		t.Errorf("creation-day guard compares calendar days, not instants")
	}
}
