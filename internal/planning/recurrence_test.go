package planning_test

import (
	"errors"
	"testing"
	"time"

	"dayplanner/internal/planning"
)

func occ(start time.Time, d time.Duration) planning.Occurrence {
	return planning.Occurrence{StartsAt: start, EndsAt: start.Add(d)}
}

func TestFloorEnd(t *testing.T) {
	start := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want time.Time
	}{
		{
			name: "end before start",
			end:  start.Add(-30 * time.Minute),
			want: start.Add(time.Hour),
		},
		{
			name: "end equal to start",
			end:  start,
			want: start.Add(time.Hour),
		},
		{
			name: "thirty minutes clamps to an hour",
			end:  start.Add(30 * time.Minute),
			want: start.Add(time.Hour),
		},
		{
			name: "exactly an hour is untouched",
			end:  start.Add(time.Hour),
			want: start.Add(time.Hour),
		},
		{
			name: "longer spans are untouched",
			end:  start.Add(3 * time.Hour),
			want: start.Add(3 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planning.FloorEnd(start, tt.end)
			if !got.Equal(tt.want) {
				t.Errorf("FloorEnd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandCounts(t *testing.T) {
	base := occ(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), 2*time.Hour)

	tests := []struct {
		kind     planning.RecurrenceKind
		count    int
		stepDays int
	}{
		{planning.RecurrenceNone, 1, 0},
		{planning.RecurrenceDaily, 7, 1},
		{planning.RecurrenceWeekly, 4, 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := planning.RecurrencePolicy{Kind: tt.kind, Base: base}.Expand()
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}
			if len(got) != tt.count {
				t.Fatalf("Expand() produced %d occurrences, want %d", len(got), tt.count)
			}
			for i, o := range got {
				wantStart := base.StartsAt.AddDate(0, 0, i*tt.stepDays)
				if !o.StartsAt.Equal(wantStart) {
					t.Errorf("occurrence %d starts at %v, want %v", i, o.StartsAt, wantStart)
				}
				if o.Duration() != 2*time.Hour {
					t.Errorf("occurrence %d duration = %v, want 2h", i, o.Duration())
				}
			}
		})
	}
}

func TestExpandTimeOfDayInvariance(t *testing.T) {
	base := occ(time.Date(2024, time.March, 4, 16, 45, 0, 0, time.UTC), 90*time.Minute)

	for _, kind := range []planning.RecurrenceKind{planning.RecurrenceDaily, planning.RecurrenceWeekly} {
		got, err := planning.RecurrencePolicy{Kind: kind, Base: base}.Expand()
		if err != nil {
			t.Fatalf("Expand(%s) error = %v", kind, err)
		}
		for i, o := range got {
			if o.StartsAt.Hour() != 16 || o.StartsAt.Minute() != 45 {
				t.Errorf("%s occurrence %d starts at %02d:%02d, want 16:45",
					kind, i, o.StartsAt.Hour(), o.StartsAt.Minute())
			}
		}
	}
}

func TestExpandWeeklyKeepsWeekday(t *testing.T) {
	base := occ(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), time.Hour) // Monday

	got, err := planning.RecurrencePolicy{Kind: planning.RecurrenceWeekly, Base: base}.Expand()
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	for i, o := range got {
		if o.StartsAt.Weekday() != time.Monday {
			t.Errorf("occurrence %d falls on %v, want Monday", i, o.StartsAt.Weekday())
		}
	}
}

func TestExpandDurationFloor(t *testing.T) {
	// 30-minute base is clamped to exactly one hour on every occurrence.
	base := occ(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), 30*time.Minute)

	for _, kind := range []planning.RecurrenceKind{planning.RecurrenceNone, planning.RecurrenceDaily, planning.RecurrenceWeekly} {
		got, err := planning.RecurrencePolicy{Kind: kind, Base: base}.Expand()
		if err != nil {
			t.Fatalf("Expand(%s) error = %v", kind, err)
		}
		for i, o := range got {
			if o.Duration() != time.Hour {
				t.Errorf("%s occurrence %d duration = %v, want 1h", kind, i, o.Duration())
			}
		}
	}
}

func TestExpandInvalidKind(t *testing.T) {
	base := occ(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC), time.Hour)

	_, err := planning.RecurrencePolicy{Kind: "MONTHLY", Base: base}.Expand()
	if !errors.Is(err, planning.ErrInvalidRecurrence) {
		t.Fatalf("Expand() error = %v, want ErrInvalidRecurrence", err)
	}
}

func TestExpandScenarioStandup(t *testing.T) {
	// Daily standup entered as 09:00–09:30 on Monday March 4: seven
	// one-hour blocks on March 4–10.
	base := planning.Occurrence{
		StartsAt: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC),
	}

	got, err := planning.RecurrencePolicy{Kind: planning.RecurrenceDaily, Base: base}.Expand()
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("Expand() produced %d occurrences, want 7", len(got))
	}
	for i, o := range got {
		wantStart := time.Date(2024, time.March, 4+i, 9, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, time.March, 4+i, 10, 0, 0, 0, time.UTC)
		if !o.StartsAt.Equal(wantStart) || !o.EndsAt.Equal(wantEnd) {
			t.Errorf("occurrence %d = [%v, %v], want [%v, %v]", i, o.StartsAt, o.EndsAt, wantStart, wantEnd)
		}
	}
}
