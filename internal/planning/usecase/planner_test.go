package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dayplanner/internal/model"
	"dayplanner/internal/planning"
	"dayplanner/internal/planning/repository"
	"dayplanner/internal/planning/usecase"
)

// planningCreateOpts seeds a one-hour user-authored entry.
func planningCreateOpts(ownerID, title string, startsAt time.Time) repository.CreateEntryOptions {
	return repository.CreateEntryOptions{
		OwnerID:    ownerID,
		Title:      title,
		StartsAt:   startsAt,
		EndsAt:     startsAt.Add(time.Hour),
		Importance: model.ImportanceMedium,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	base := planning.Occurrence{
		StartsAt: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC),
	}

	t.Run("rejects blank title", func(t *testing.T) {
		repo := &mockEntryRepo{}
		uc := newTestUseCase(repo)

		_, err := uc.Create(ctx, planning.CreateInput{
			OwnerID:    "u1",
			Title:      "   ",
			Recurrence: planning.RecurrencePolicy{Kind: planning.RecurrenceNone, Base: base},
		})
		if !errors.Is(err, planning.ErrTitleRequired) {
			t.Fatalf("expected ErrTitleRequired, got %v", err)
		}
		if len(repo.entries) != 0 {
			t.Errorf("nothing must be persisted on validation failure")
		}
	})

	t.Run("single entry without recurrence", func(t *testing.T) {
		repo := &mockEntryRepo{}
		uc := newTestUseCase(repo)

		out, err := uc.Create(ctx, planning.CreateInput{
			OwnerID:    "u1",
			Title:      "Dentist",
			Importance: model.ImportanceHigh,
			Recurrence: planning.RecurrencePolicy{Kind: planning.RecurrenceNone, Base: base},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(out.Entries))
		}
		if out.Entries[0].SourceTodoID != "" {
			t.Errorf("user-authored entries never carry a source todo id")
		}
	})

	t.Run("daily recurrence persists seven entries", func(t *testing.T) {
		repo := &mockEntryRepo{}
		uc := newTestUseCase(repo)

		out, err := uc.Create(ctx, planning.CreateInput{
			OwnerID:    "u1",
			Title:      "Standup",
			Recurrence: planning.RecurrencePolicy{Kind: planning.RecurrenceDaily, Base: base},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Entries) != 7 {
			t.Fatalf("expected 7 entries, got %d", len(out.Entries))
		}
		for i, e := range out.Entries {
			want := base.StartsAt.AddDate(0, 0, i)
			if !e.StartsAt.Equal(want) {
				t.Errorf("entry %d: expected start %v, got %v", i, want, e.StartsAt)
			}
		}
	})

	t.Run("invalid importance defaults to medium", func(t *testing.T) {
		repo := &mockEntryRepo{}
		uc := newTestUseCase(repo)

		out, err := uc.Create(ctx, planning.CreateInput{
			OwnerID:    "u1",
			Title:      "Dentist",
			Importance: model.Importance("URGENT"),
			Recurrence: planning.RecurrencePolicy{Kind: planning.RecurrenceNone, Base: base},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entries[0].Importance != model.ImportanceMedium {
			t.Errorf("expected MEDIUM, got %s", out.Entries[0].Importance)
		}
	})

	t.Run("calendar export failure does not fail create", func(t *testing.T) {
		repo := &mockEntryRepo{}
		cal := &mockCalendarClient{fail: true}
		uc := usecase.New(repo, &mockLogger{}, cal, "primary")

		out, err := uc.Create(ctx, planning.CreateInput{
			OwnerID:    "u1",
			Title:      "Standup",
			Recurrence: planning.RecurrencePolicy{Kind: planning.RecurrenceDaily, Base: base},
		})
		if err != nil {
			t.Fatalf("unexpected error on export failure: %v", err)
		}
		if len(out.Entries) != 7 {
			t.Errorf("expected 7 entries, got %d", len(out.Entries))
		}
		if cal.calls != 7 {
			t.Errorf("expected one export attempt per entry, got %d", cal.calls)
		}
	})

	t.Run("export disabled without a client", func(t *testing.T) {
		repo := &mockEntryRepo{}
		uc := newTestUseCase(repo)

		_, err := uc.Create(ctx, planning.CreateInput{
			OwnerID:    "u1",
			Title:      "Dentist",
			Recurrence: planning.RecurrencePolicy{Kind: planning.RecurrenceNone, Base: base},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := &mockEntryRepo{}
	uc := newTestUseCase(repo)

	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		repo.CreateEntry(ctx, planningCreateOpts("u1", "Entry", day.AddDate(0, 0, i).Add(9*time.Hour)))
	}
	repo.CreateEntry(ctx, planningCreateOpts("u2", "Other user", day.Add(9*time.Hour)))

	out, err := uc.List(ctx, planning.ListInput{
		OwnerID: "u1",
		From:    day,
		To:      day.AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("expected 2 entries in window, got %d", len(out.Entries))
	}
}

func TestUpdateDetails(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(&mockEntryRepo{})
		_, err := uc.UpdateDetails(ctx, planning.UpdateDetailsInput{OwnerID: "u1", ID: "missing"})
		if !errors.Is(err, planning.ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("partial update keeps existing fields", func(t *testing.T) {
		repo := &mockEntryRepo{}
		created, _ := repo.CreateEntry(ctx, planningCreateOpts("u1", "Dentist", start))
		uc := newTestUseCase(repo)

		out, err := uc.UpdateDetails(ctx, planning.UpdateDetailsInput{
			OwnerID:     "u1",
			ID:          created.ID,
			Description: "bring insurance card",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.Title != "Dentist" {
			t.Errorf("empty title must keep existing, got %q", out.Entry.Title)
		}
		if out.Entry.Description != "bring insurance card" {
			t.Errorf("description not updated: %q", out.Entry.Description)
		}
		if out.Entry.Importance != model.ImportanceMedium {
			t.Errorf("invalid importance must keep existing, got %s", out.Entry.Importance)
		}
		if !out.Entry.StartsAt.Equal(start) {
			t.Errorf("times must be untouched by a detail edit")
		}
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	weekStart := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC) // Sunday
	base := planning.Occurrence{
		StartsAt: time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC),
	}

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(&mockEntryRepo{})
		_, err := uc.Reschedule(ctx, planning.RescheduleInput{
			OwnerID:   "u1",
			ID:        "missing",
			WeekStart: weekStart,
			Target:    planning.DropTarget{Kind: planning.DropTimeSlot, DayIndex: 5, Hour: 14},
		})
		if !errors.Is(err, planning.ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("moves one occurrence and leaves siblings alone", func(t *testing.T) {
		repo := &mockEntryRepo{}
		uc := newTestUseCase(repo)

		out, err := uc.Create(ctx, planning.CreateInput{
			OwnerID:    "u1",
			Title:      "Standup",
			Recurrence: planning.RecurrencePolicy{Kind: planning.RecurrenceDaily, Base: base},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		target := out.Entries[2] // Wednesday March 6

		moved, err := uc.Reschedule(ctx, planning.RescheduleInput{
			OwnerID:   "u1",
			ID:        target.ID,
			WeekStart: weekStart,
			Target:    planning.DropTarget{Kind: planning.DropTimeSlot, DayIndex: 5, Hour: 14},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2024, time.March, 8, 14, 0, 0, 0, time.UTC)
		if !moved.Entry.StartsAt.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, moved.Entry.StartsAt)
		}
		if !moved.Entry.EndsAt.Equal(wantStart.Add(time.Hour)) {
			t.Errorf("duration must be preserved, got end %v", moved.Entry.EndsAt)
		}

		for _, e := range repo.entries {
			if e.ID == target.ID {
				continue
			}
			if e.StartsAt.Hour() != 9 {
				t.Errorf("sibling occurrence %s moved unexpectedly to %v", e.ID, e.StartsAt)
			}
		}
	})

	t.Run("day header drop keeps time of day", func(t *testing.T) {
		repo := &mockEntryRepo{}
		start := time.Date(2024, time.March, 4, 16, 45, 0, 0, time.UTC)
		created, _ := repo.CreateEntry(ctx, planningCreateOpts("u1", "Focus block", start))
		uc := newTestUseCase(repo)

		moved, err := uc.Reschedule(ctx, planning.RescheduleInput{
			OwnerID:   "u1",
			ID:        created.ID,
			WeekStart: weekStart,
			Target:    planning.DropTarget{Kind: planning.DropDayOnly, DayIndex: 6},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2024, time.March, 9, 16, 45, 0, 0, time.UTC)
		if !moved.Entry.StartsAt.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, moved.Entry.StartsAt)
		}
	})
}

func TestSetTimes(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

	repo := &mockEntryRepo{}
	created, _ := repo.CreateEntry(ctx, planningCreateOpts("u1", "Dentist", start))
	uc := newTestUseCase(repo)

	// End before start is normalized to start + 1h.
	out, err := uc.SetTimes(ctx, planning.SetTimesInput{
		OwnerID:  "u1",
		ID:       created.ID,
		StartsAt: start,
		EndsAt:   start.Add(-30 * time.Minute),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Entry.EndsAt.Equal(start.Add(time.Hour)) {
		t.Errorf("expected end floored to %v, got %v", start.Add(time.Hour), out.Entry.EndsAt)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(&mockEntryRepo{})
		err := uc.Delete(ctx, "u1", "missing")
		if !errors.Is(err, planning.ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("removes the entry", func(t *testing.T) {
		repo := &mockEntryRepo{}
		created, _ := repo.CreateEntry(ctx, planningCreateOpts("u1", "Dentist", start))
		uc := newTestUseCase(repo)

		if err := uc.Delete(ctx, "u1", created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.entries) != 0 {
			t.Errorf("expected entry removed")
		}
	})
}
