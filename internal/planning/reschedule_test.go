package planning_test

import (
	"errors"
	"testing"
	"time"

	"dayplanner/internal/planning"
)

var weekStart = time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC) // Sunday

func TestResolveDropTimeSlot(t *testing.T) {
	current := occ(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), 90*time.Minute)

	got, err := planning.ResolveDrop(weekStart, planning.DropTarget{
		Kind:     planning.DropTimeSlot,
		DayIndex: 3, // Wednesday
		Hour:     14,
	}, current)
	if err != nil {
		t.Fatalf("ResolveDrop() error = %v", err)
	}

	wantStart := time.Date(2024, time.March, 6, 14, 0, 0, 0, time.UTC)
	if !got.StartsAt.Equal(wantStart) {
		t.Errorf("StartsAt = %v, want %v", got.StartsAt, wantStart)
	}
	if got.Duration() != 90*time.Minute {
		t.Errorf("duration = %v, want 90m (preserved)", got.Duration())
	}
}

func TestResolveDropDayOnlyKeepsTimeOfDay(t *testing.T) {
	current := occ(time.Date(2024, time.March, 4, 16, 45, 0, 0, time.UTC), 2*time.Hour)

	got, err := planning.ResolveDrop(weekStart, planning.DropTarget{
		Kind:     planning.DropDayOnly,
		DayIndex: 5, // Friday
	}, current)
	if err != nil {
		t.Fatalf("ResolveDrop() error = %v", err)
	}

	wantStart := time.Date(2024, time.March, 8, 16, 45, 0, 0, time.UTC)
	if !got.StartsAt.Equal(wantStart) {
		t.Errorf("StartsAt = %v, want %v (same hour and minute)", got.StartsAt, wantStart)
	}
	if got.Duration() != 2*time.Hour {
		t.Errorf("duration = %v, want 2h (preserved)", got.Duration())
	}
}

func TestResolveDropPreservesDuration(t *testing.T) {
	durations := []time.Duration{
		time.Hour,
		90 * time.Minute,
		5 * time.Hour,
		26 * time.Hour, // multi-day block
	}
	targets := []planning.DropTarget{
		{Kind: planning.DropTimeSlot, DayIndex: 0, Hour: 0},
		{Kind: planning.DropTimeSlot, DayIndex: 6, Hour: 23},
		{Kind: planning.DropDayOnly, DayIndex: 2},
	}

	for _, d := range durations {
		current := occ(time.Date(2024, time.March, 5, 11, 30, 0, 0, time.UTC), d)
		for _, target := range targets {
			got, err := planning.ResolveDrop(weekStart, target, current)
			if err != nil {
				t.Fatalf("ResolveDrop(%+v) error = %v", target, err)
			}
			if got.Duration() != d {
				t.Errorf("ResolveDrop(%+v) duration = %v, want %v", target, got.Duration(), d)
			}
		}
	}
}

func TestResolveDropFloorsDegenerateDuration(t *testing.T) {
	// A zero-length occurrence must not reach persistence; the resolver
	// applies the shared one-hour floor.
	current := occ(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), 0)

	got, err := planning.ResolveDrop(weekStart, planning.DropTarget{
		Kind:     planning.DropTimeSlot,
		DayIndex: 1,
		Hour:     9,
	}, current)
	if err != nil {
		t.Fatalf("ResolveDrop() error = %v", err)
	}
	if got.Duration() != time.Hour {
		t.Errorf("duration = %v, want 1h floor", got.Duration())
	}
}

func TestResolveDropUnknownKind(t *testing.T) {
	current := occ(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), time.Hour)

	_, err := planning.ResolveDrop(weekStart, planning.DropTarget{Kind: "PILL"}, current)
	if !errors.Is(err, planning.ErrInvalidDropTarget) {
		t.Fatalf("ResolveDrop() error = %v, want ErrInvalidDropTarget", err)
	}
}

func TestResolveDropCrossWeek(t *testing.T) {
	// Moving within a different displayed week: the target is always
	// resolved against the supplied week start.
	nextWeek := weekStart.AddDate(0, 0, 7)
	current := occ(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), time.Hour)

	got, err := planning.ResolveDrop(nextWeek, planning.DropTarget{
		Kind:     planning.DropTimeSlot,
		DayIndex: 1,
		Hour:     9,
	}, current)
	if err != nil {
		t.Fatalf("ResolveDrop() error = %v", err)
	}
	wantStart := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)
	if !got.StartsAt.Equal(wantStart) {
		t.Errorf("StartsAt = %v, want %v", got.StartsAt, wantStart)
	}
}
