package usecase

import (
	"context"
	"time"

	"dayplanner/internal/dashboard"
	"dayplanner/internal/habit"
	habitrepo "dayplanner/internal/habit/repository"
	"dayplanner/internal/model"
	planningrepo "dayplanner/internal/planning/repository"
	todorepo "dayplanner/internal/todo/repository"
	"dayplanner/pkg/calmath"
)

// upcomingPlanLimit caps the upcoming plans list on the dashboard.
const upcomingPlanLimit = 5

// Stats assembles the owner's dashboard figures in one pass.
func (uc *implUseCase) Stats(ctx context.Context, ownerID string) (dashboard.StatsOutput, error) {
	now := uc.clock.Now()
	dayStart := calmath.StartOfDay(now)
	dayEnd := calmath.AddDays(dayStart, 1)

	var stats dashboard.Stats

	total, err := uc.todos.CountTodos(ctx, todorepo.ListTodosOptions{OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Stats uc.todos.CountTodos total: %v", err)
		return dashboard.StatsOutput{}, err
	}
	stats.TotalTodos = total

	done, err := uc.todos.CountTodos(ctx, todorepo.ListTodosOptions{
		OwnerID: ownerID,
		Status:  model.StatusDone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Stats uc.todos.CountTodos done: %v", err)
		return dashboard.StatsOutput{}, err
	}
	stats.DoneTodos = done
	if total > 0 {
		stats.CompletionRate = float64(done) / float64(total)
	}

	openToday, err := uc.todos.CountTodos(ctx, todorepo.ListTodosOptions{
		OwnerID:  ownerID,
		OpenOnly: true,
		DueFrom:  dayStart,
		DueTo:    dayEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Stats uc.todos.CountTodos openToday: %v", err)
		return dashboard.StatsOutput{}, err
	}
	stats.OpenTodayTodos = openToday

	overdue, err := uc.todos.CountTodos(ctx, todorepo.ListTodosOptions{
		OwnerID:   ownerID,
		OpenOnly:  true,
		DueBefore: now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Stats uc.todos.CountTodos overdue: %v", err)
		return dashboard.StatsOutput{}, err
	}
	stats.OverdueTodos = overdue

	plansToday, err := uc.planning.CountEntries(ctx, planningrepo.ListEntriesOptions{
		OwnerID: ownerID,
		From:    dayStart,
		To:      dayEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Stats uc.planning.CountEntries: %v", err)
		return dashboard.StatsOutput{}, err
	}
	stats.PlansToday = plansToday

	upcoming, err := uc.planning.ListEntries(ctx, planningrepo.ListEntriesOptions{
		OwnerID: ownerID,
		From:    now,
		Limit:   upcomingPlanLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Stats uc.planning.ListEntries: %v", err)
		return dashboard.StatsOutput{}, err
	}
	stats.UpcomingPlans = upcoming

	due, err := uc.habitsDueToday(ctx, ownerID, now)
	if err != nil {
		return dashboard.StatsOutput{}, err
	}
	stats.HabitsDueToday = due

	return dashboard.StatsOutput{GeneratedAt: now, Stats: stats}, nil
}

// habitsDueToday pairs the habits active on the current day with their
// log state.
func (uc *implUseCase) habitsDueToday(ctx context.Context, ownerID string, now time.Time) ([]dashboard.HabitStatus, error) {
	habits, err := uc.habits.ListHabits(ctx, habitrepo.ListHabitsOptions{OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Stats uc.habits.ListHabits: %v", err)
		return nil, err
	}

	logs, err := uc.habits.ListLogsForDay(ctx, ownerID, calmath.StartOfDay(now))
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Stats uc.habits.ListLogsForDay: %v", err)
		return nil, err
	}
	doneByHabit := make(map[string]bool, len(logs))
	for _, l := range logs {
		doneByHabit[l.HabitID] = l.Done
	}

	var due []dashboard.HabitStatus
	for _, h := range habits {
		if !habit.ActiveOn(h, now) {
			continue
		}
		due = append(due, dashboard.HabitStatus{Habit: h, Done: doneByHabit[h.ID]})
	}
	return due, nil
}
