package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"dayplanner/internal/dashboard/usecase"
	"dayplanner/internal/habit"
	habitrepo "dayplanner/internal/habit/repository"
	"dayplanner/internal/model"
	"dayplanner/internal/planning"
	planningrepo "dayplanner/internal/planning/repository"
	"dayplanner/internal/todo"
	todorepo "dayplanner/internal/todo/repository"
	"dayplanner/pkg/calmath"
	"dayplanner/pkg/clock"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockTodoRepo struct {
	todos []todo.Todo
}

func (m *mockTodoRepo) CreateTodo(ctx context.Context, opt todorepo.CreateTodoOptions) (todo.Todo, error) {
	return todo.Todo{}, nil
}

func (m *mockTodoRepo) GetOneTodo(ctx context.Context, opt todorepo.GetOneTodoOptions) (todo.Todo, error) {
	return todo.Todo{}, nil
}

func (m *mockTodoRepo) matches(t todo.Todo, opt todorepo.ListTodosOptions) bool {
	if t.OwnerID != opt.OwnerID {
		return false
	}
	if opt.Status != "" && t.Status != opt.Status {
		return false
	}
	if opt.OpenOnly && t.Status == model.StatusDone {
		return false
	}
	if !opt.DueBefore.IsZero() {
		if t.DueAt == nil || !t.DueAt.Before(opt.DueBefore) {
			return false
		}
	}
	if !opt.DueFrom.IsZero() {
		if t.DueAt == nil || t.DueAt.Before(opt.DueFrom) {
			return false
		}
	}
	if !opt.DueTo.IsZero() {
		if t.DueAt == nil || !t.DueAt.Before(opt.DueTo) {
			return false
		}
	}
	return true
}

func (m *mockTodoRepo) ListTodos(ctx context.Context, opt todorepo.ListTodosOptions) ([]todo.Todo, error) {
	var out []todo.Todo
	for _, t := range m.todos {
		if m.matches(t, opt) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTodoRepo) CountTodos(ctx context.Context, opt todorepo.ListTodosOptions) (int, error) {
	list, _ := m.ListTodos(ctx, opt)
	return len(list), nil
}

func (m *mockTodoRepo) UpdateTodo(ctx context.Context, opt todorepo.UpdateTodoOptions) (todo.Todo, error) {
	return todo.Todo{}, nil
}

func (m *mockTodoRepo) DeleteTodo(ctx context.Context, ownerID, id string) error { return nil }

type mockEntryRepo struct {
	entries []planning.Entry
}

func (m *mockEntryRepo) CreateEntry(ctx context.Context, opt planningrepo.CreateEntryOptions) (planning.Entry, error) {
	return planning.Entry{}, nil
}

func (m *mockEntryRepo) CreateEntriesBatch(ctx context.Context, opts []planningrepo.CreateEntryOptions) ([]planning.Entry, error) {
	return nil, nil
}

func (m *mockEntryRepo) GetOneEntry(ctx context.Context, opt planningrepo.GetOneEntryOptions) (planning.Entry, error) {
	return planning.Entry{}, nil
}

func (m *mockEntryRepo) ListBySourceTodo(ctx context.Context, ownerID, todoID string) ([]planning.Entry, error) {
	return nil, nil
}

func (m *mockEntryRepo) ListEntries(ctx context.Context, opt planningrepo.ListEntriesOptions) ([]planning.Entry, error) {
	var out []planning.Entry
	for _, e := range m.entries {
		if e.OwnerID != opt.OwnerID {
			continue
		}
		if !opt.From.IsZero() && e.StartsAt.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && !e.StartsAt.Before(opt.To) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (m *mockEntryRepo) CountEntries(ctx context.Context, opt planningrepo.ListEntriesOptions) (int, error) {
	list, _ := m.ListEntries(ctx, opt)
	return len(list), nil
}

func (m *mockEntryRepo) UpdateEntry(ctx context.Context, opt planningrepo.UpdateEntryOptions) (planning.Entry, error) {
	return planning.Entry{}, nil
}

func (m *mockEntryRepo) DeleteEntry(ctx context.Context, ownerID, id string) error { return nil }

func (m *mockEntryRepo) DeleteBySourceTodo(ctx context.Context, ownerID, todoID string) error {
	return nil
}

type mockHabitRepo struct {
	habits []habit.Habit
	logs   []habit.Log
}

func (m *mockHabitRepo) CreateHabit(ctx context.Context, opt habitrepo.CreateHabitOptions) (habit.Habit, error) {
	return habit.Habit{}, nil
}

func (m *mockHabitRepo) GetOneHabit(ctx context.Context, opt habitrepo.GetOneHabitOptions) (habit.Habit, error) {
	return habit.Habit{}, nil
}

func (m *mockHabitRepo) ListHabits(ctx context.Context, opt habitrepo.ListHabitsOptions) ([]habit.Habit, error) {
	var out []habit.Habit
	for _, h := range m.habits {
		if h.OwnerID != opt.OwnerID {
			continue
		}
		if h.IsArchived && !opt.IncludeArchived {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (m *mockHabitRepo) UpdateHabit(ctx context.Context, opt habitrepo.UpdateHabitOptions) (habit.Habit, error) {
	return habit.Habit{}, nil
}

func (m *mockHabitRepo) DeleteHabit(ctx context.Context, ownerID, id string) error { return nil }

func (m *mockHabitRepo) GetLog(ctx context.Context, ownerID, habitID string, day time.Time) (habit.Log, error) {
	return habit.Log{}, nil
}

func (m *mockHabitRepo) ListLogsForDay(ctx context.Context, ownerID string, day time.Time) ([]habit.Log, error) {
	var out []habit.Log
	for _, l := range m.logs {
		if l.OwnerID == ownerID && l.Day.Equal(day) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockHabitRepo) UpsertLog(ctx context.Context, opt habitrepo.UpsertLogOptions) (habit.Log, error) {
	return habit.Log{}, nil
}

func (m *mockHabitRepo) DeleteLogsForHabit(ctx context.Context, ownerID, habitID string) error {
	return nil
}

// tests

// testNow is Wednesday 2024-03-06 14:00 local.
var testNow = time.Date(2024, time.March, 6, 14, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time { return &t }

func TestStats(t *testing.T) {
	ctx := context.Background()

	todos := &mockTodoRepo{todos: []todo.Todo{
		{ID: "t1", OwnerID: "u1", Status: model.StatusDone, DueAt: tp(testNow.Add(-48 * time.Hour))},
		{ID: "t2", OwnerID: "u1", Status: model.StatusTodo, DueAt: tp(testNow.Add(-24 * time.Hour))},
		{ID: "t3", OwnerID: "u1", Status: model.StatusInProgress, DueAt: tp(testNow.Add(2 * time.Hour))},
		{ID: "t4", OwnerID: "u1", Status: model.StatusTodo},
		{ID: "t5", OwnerID: "u2", Status: model.StatusTodo},
	}}

	entries := &mockEntryRepo{entries: []planning.Entry{
		{ID: "e1", OwnerID: "u1", StartsAt: calmath.StartOfDay(testNow).Add(9 * time.Hour)},
		{ID: "e2", OwnerID: "u1", StartsAt: testNow.Add(3 * time.Hour)},
		{ID: "e3", OwnerID: "u1", StartsAt: testNow.Add(72 * time.Hour)},
		{ID: "e4", OwnerID: "u2", StartsAt: testNow.Add(time.Hour)},
	}}

	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	habits := &mockHabitRepo{
		habits: []habit.Habit{
			{ID: "h1", OwnerID: "u1", Frequency: model.FrequencyDaily, CreatedAt: created},
			{ID: "h2", OwnerID: "u1", Frequency: model.FrequencyWeekly, DaysOfWeek: []int{1, 5}, CreatedAt: created},
			{ID: "h3", OwnerID: "u1", Frequency: model.FrequencyDaily, CreatedAt: created, IsArchived: true},
		},
		logs: []habit.Log{
			{ID: "l1", HabitID: "h1", OwnerID: "u1", Day: calmath.StartOfDay(testNow), Done: true},
		},
	}

	uc := usecase.New(todos, entries, habits, clock.Fixed{T: testNow}, &mockLogger{})

	out, err := uc.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !out.GeneratedAt.Equal(testNow) {
		t.Fatalf("expected GeneratedAt %v, got %v", testNow, out.GeneratedAt)
	}

	s := out.Stats
	if s.TotalTodos != 4 || s.DoneTodos != 1 {
		t.Fatalf("expected 4 todos / 1 done, got %d / %d", s.TotalTodos, s.DoneTodos)
	}
	if s.CompletionRate != 0.25 {
		t.Fatalf("expected completion rate 0.25, got %v", s.CompletionRate)
	}
	if s.OverdueTodos != 1 {
		t.Fatalf("expected 1 overdue todo, got %d", s.OverdueTodos)
	}
	if s.OpenTodayTodos != 1 {
		t.Fatalf("expected 1 open todo due today, got %d", s.OpenTodayTodos)
	}

	if s.PlansToday != 2 {
		t.Fatalf("expected 2 plans today, got %d", s.PlansToday)
	}
	if len(s.UpcomingPlans) != 2 {
		t.Fatalf("expected 2 upcoming plans, got %d", len(s.UpcomingPlans))
	}
	if s.UpcomingPlans[0].ID != "e2" || s.UpcomingPlans[1].ID != "e3" {
		t.Fatalf("unexpected upcoming order: %v, %v", s.UpcomingPlans[0].ID, s.UpcomingPlans[1].ID)
	}

	// Wednesday: daily habit due and logged, weekly Mon/Fri habit not
	// due, archived habit excluded.
	if len(s.HabitsDueToday) != 1 {
		t.Fatalf("expected 1 habit due today, got %d", len(s.HabitsDueToday))
	}
	if s.HabitsDueToday[0].Habit.ID != "h1" || !s.HabitsDueToday[0].Done {
		t.Fatalf("unexpected habit status: %+v", s.HabitsDueToday[0])
	}
}

func TestStatsEmpty(t *testing.T) {
	uc := usecase.New(&mockTodoRepo{}, &mockEntryRepo{}, &mockHabitRepo{}, clock.Fixed{T: testNow}, &mockLogger{})

	out, err := uc.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if out.Stats.CompletionRate != 0 {
		t.Fatalf("expected zero completion rate, got %v", out.Stats.CompletionRate)
	}
	if out.Stats.TotalTodos != 0 || len(out.Stats.UpcomingPlans) != 0 || len(out.Stats.HabitsDueToday) != 0 {
		t.Fatalf("expected empty stats, got %+v", out.Stats)
	}
}
