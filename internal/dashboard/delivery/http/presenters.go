package http

import (
	"time"

	"dayplanner/internal/dashboard"
)

type upcomingPlanResp struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Importance string    `json:"importance"`
	Completed  bool      `json:"completed"`
}

type habitStatusResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
	Done      bool   `json:"done"`
}

type statsResp struct {
	GeneratedAt    time.Time          `json:"generated_at"`
	TotalTodos     int                `json:"total_todos"`
	DoneTodos      int                `json:"done_todos"`
	OpenTodayTodos int                `json:"open_today_todos"`
	OverdueTodos   int                `json:"overdue_todos"`
	CompletionRate float64            `json:"completion_rate"`
	PlansToday     int                `json:"plans_today"`
	UpcomingPlans  []upcomingPlanResp `json:"upcoming_plans"`
	HabitsDueToday []habitStatusResp  `json:"habits_due_today"`
}

func (h *handler) newStatsResp(out dashboard.StatsOutput) statsResp {
	s := out.Stats

	plans := make([]upcomingPlanResp, len(s.UpcomingPlans))
	for i, e := range s.UpcomingPlans {
		plans[i] = upcomingPlanResp{
			ID:         e.ID,
			Title:      e.Title,
			StartsAt:   e.StartsAt,
			EndsAt:     e.EndsAt,
			Importance: string(e.Importance),
			Completed:  e.Completed,
		}
	}

	habits := make([]habitStatusResp, len(s.HabitsDueToday))
	for i, hs := range s.HabitsDueToday {
		habits[i] = habitStatusResp{
			ID:        hs.Habit.ID,
			Title:     hs.Habit.Title,
			Frequency: string(hs.Habit.Frequency),
			Done:      hs.Done,
		}
	}

	return statsResp{
		GeneratedAt:    out.GeneratedAt,
		TotalTodos:     s.TotalTodos,
		DoneTodos:      s.DoneTodos,
		OpenTodayTodos: s.OpenTodayTodos,
		OverdueTodos:   s.OverdueTodos,
		CompletionRate: s.CompletionRate,
		PlansToday:     s.PlansToday,
		UpcomingPlans:  plans,
		HabitsDueToday: habits,
	}
}
