package http

import (
	"time"

	"dayplanner/internal/habit"
	"dayplanner/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title           string `json:"title"             binding:"required,min=1,max=255"`
	Description     string `json:"description"       binding:"max=2000"`
	Frequency       string `json:"frequency"         binding:"required,oneof=DAILY WEEKLY MONTHLY"`
	DaysOfWeek      []int  `json:"days_of_week"`
	Type            string `json:"type"              binding:"omitempty,oneof=YES_NO COUNTER"`
	TargetPerPeriod int    `json:"target_per_period" binding:"omitempty,min=1"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(ownerID string) habit.CreateInput {
	return habit.CreateInput{
		OwnerID:         ownerID,
		Title:           r.Title,
		Description:     r.Description,
		Frequency:       model.Frequency(r.Frequency),
		DaysOfWeek:      r.DaysOfWeek,
		Type:            model.HabitType(r.Type),
		TargetPerPeriod: r.TargetPerPeriod,
	}
}

// ---

type updateReq struct {
	ID              string `json:"-"`
	Title           string `json:"title"             binding:"omitempty,min=1,max=255"`
	Description     string `json:"description"       binding:"max=2000"`
	Frequency       string `json:"frequency"         binding:"omitempty,oneof=DAILY WEEKLY MONTHLY"`
	DaysOfWeek      []int  `json:"days_of_week"`
	TargetPerPeriod int    `json:"target_per_period" binding:"omitempty,min=1"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput(ownerID string) habit.UpdateInput {
	return habit.UpdateInput{
		OwnerID:         ownerID,
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Frequency:       model.Frequency(r.Frequency),
		DaysOfWeek:      r.DaysOfWeek,
		TargetPerPeriod: r.TargetPerPeriod,
	}
}

// ---

type archiveReq struct {
	Archived bool `json:"archived"`
}

// ---

type toggleReq struct {
	ID    string `json:"-"`
	Delta int    `json:"delta"`
}

func (r toggleReq) toInput(ownerID string) habit.ToggleTodayInput {
	return habit.ToggleTodayInput{
		OwnerID: ownerID,
		ID:      r.ID,
		Delta:   r.Delta,
	}
}

// --- Response DTOs ---

type habitResp struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Frequency       string    `json:"frequency"`
	DaysOfWeek      []int     `json:"days_of_week"`
	Type            string    `json:"type"`
	TargetPerPeriod int       `json:"target_per_period"`
	IsArchived      bool      `json:"is_archived"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newHabitResp(h habit.Habit) habitResp {
	return habitResp{
		ID:              h.ID,
		Title:           h.Title,
		Description:     h.Description,
		Frequency:       string(h.Frequency),
		DaysOfWeek:      h.DaysOfWeek,
		Type:            string(h.Type),
		TargetPerPeriod: h.TargetPerPeriod,
		IsArchived:      h.IsArchived,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}

type logResp struct {
	ID    string    `json:"id"`
	Day   time.Time `json:"day"`
	Value int       `json:"value"`
	Done  bool      `json:"done"`
}

func newLogResp(l habit.Log) logResp {
	return logResp{ID: l.ID, Day: l.Day, Value: l.Value, Done: l.Done}
}

type habitEntryResp struct {
	Habit habitResp `json:"habit"`
	Log   *logResp  `json:"log,omitempty"`
}

type createResp struct {
	Habit habitResp `json:"habit"`
}

func (h *handler) newCreateResp(out habit.CreateOutput) createResp {
	return createResp{Habit: newHabitResp(out.Habit)}
}

type listResp struct {
	Habits []habitResp `json:"habits"`
}

func (h *handler) newListResp(out habit.ListOutput) listResp {
	habits := make([]habitResp, len(out.Habits))
	for i, hb := range out.Habits {
		habits[i] = newHabitResp(hb)
	}
	return listResp{Habits: habits}
}

type detailResp struct {
	Habit habitResp `json:"habit"`
}

func (h *handler) newDetailResp(out habit.DetailOutput) detailResp {
	return detailResp{Habit: newHabitResp(out.Habit)}
}

type updateResp struct {
	Habit habitResp `json:"habit"`
}

func (h *handler) newUpdateResp(out habit.UpdateOutput) updateResp {
	return updateResp{Habit: newHabitResp(out.Habit)}
}

type todayResp struct {
	Entries []habitEntryResp `json:"entries"`
}

func (h *handler) newTodayResp(out habit.TodayOutput) todayResp {
	entries := make([]habitEntryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = habitEntryResp{Habit: newHabitResp(e.Habit)}
		if e.Log != nil {
			l := newLogResp(*e.Log)
			entries[i].Log = &l
		}
	}
	return todayResp{Entries: entries}
}

type toggleResp struct {
	Log logResp `json:"log"`
}

func (h *handler) newToggleResp(out habit.ToggleOutput) toggleResp {
	return toggleResp{Log: newLogResp(out.Log)}
}
