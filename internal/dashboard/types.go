package dashboard

import (
	"time"

	"dayplanner/internal/habit"
	"dayplanner/internal/planning"
)

// HabitStatus pairs a habit due today with its completion state.
type HabitStatus struct {
	Habit habit.Habit
	Done  bool
}

// Stats is the aggregated read model for the dashboard screen. All
// "today" figures are relative to the clock's local wall day.
type Stats struct {
	TotalTodos     int
	DoneTodos      int
	OpenTodayTodos int
	OverdueTodos   int
	// CompletionRate is DoneTodos/TotalTodos, 0 with no todos.
	CompletionRate float64

	PlansToday    int
	UpcomingPlans []planning.Entry

	HabitsDueToday []HabitStatus
}

type StatsOutput struct {
	GeneratedAt time.Time
	Stats       Stats
}
