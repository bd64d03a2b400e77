package http

import (
	"errors"
	"time"

	"dayplanner/internal/model"
	"dayplanner/internal/planning"
)

var errInvalidTime = errors.New("invalid time, expected RFC3339")

// --- Request DTOs ---

type createReq struct {
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Importance  string    `json:"importance"  binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	StartsAt    time.Time `json:"starts_at"   binding:"required"`
	EndsAt      time.Time `json:"ends_at"     binding:"required"`
	Recurrence  string    `json:"recurrence"  binding:"omitempty,oneof=NONE DAILY WEEKLY"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(ownerID string) planning.CreateInput {
	kind := planning.RecurrenceKind(r.Recurrence)
	if r.Recurrence == "" {
		kind = planning.RecurrenceNone
	}
	return planning.CreateInput{
		OwnerID:     ownerID,
		Title:       r.Title,
		Description: r.Description,
		Importance:  model.Importance(r.Importance),
		Recurrence: planning.RecurrencePolicy{
			Kind: kind,
			Base: planning.Occurrence{StartsAt: r.StartsAt, EndsAt: r.EndsAt},
		},
	}
}

// ---

type listReq struct {
	From string `form:"from"`
	To   string `form:"to"`

	from time.Time
	to   time.Time
}

func (r *listReq) validate() error {
	var err error
	if r.From != "" {
		if r.from, err = time.Parse(time.RFC3339, r.From); err != nil {
			return errInvalidTime
		}
	}
	if r.To != "" {
		if r.to, err = time.Parse(time.RFC3339, r.To); err != nil {
			return errInvalidTime
		}
	}
	return nil
}

func (r *listReq) toInput(ownerID string) planning.ListInput {
	return planning.ListInput{
		OwnerID: ownerID,
		From:    r.from,
		To:      r.to,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Importance  string `json:"importance"  binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput(ownerID string) planning.UpdateDetailsInput {
	return planning.UpdateDetailsInput{
		OwnerID:     ownerID,
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Importance:  model.Importance(r.Importance),
	}
}

// ---

type rescheduleReq struct {
	ID        string `json:"-"`
	WeekStart string `json:"week_start" binding:"required"`
	Kind      string `json:"kind"       binding:"required,oneof=TIME_SLOT DAY_ONLY"`
	DayIndex  int    `json:"day_index"  binding:"min=0,max=6"`
	Hour      int    `json:"hour"       binding:"min=0,max=23"`

	weekStart time.Time
}

func (r *rescheduleReq) validate() error {
	var err error
	if r.weekStart, err = time.Parse(time.RFC3339, r.WeekStart); err != nil {
		return errInvalidTime
	}
	return nil
}

func (r *rescheduleReq) toInput(ownerID string) planning.RescheduleInput {
	return planning.RescheduleInput{
		OwnerID:   ownerID,
		ID:        r.ID,
		WeekStart: r.weekStart,
		Target: planning.DropTarget{
			Kind:     planning.DropTargetKind(r.Kind),
			DayIndex: r.DayIndex,
			Hour:     r.Hour,
		},
	}
}

// ---

type setTimesReq struct {
	ID       string    `json:"-"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at"   binding:"required"`
}

func (r setTimesReq) validate() error { return nil }

func (r setTimesReq) toInput(ownerID string) planning.SetTimesInput {
	return planning.SetTimesInput{
		OwnerID:  ownerID,
		ID:       r.ID,
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
	}
}

// --- Response DTOs ---

type entryResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	Importance   string    `json:"importance"`
	Completed    bool      `json:"completed"`
	SourceTodoID string    `json:"source_todo_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newEntryResp(entry planning.Entry) entryResp {
	return entryResp{
		ID:           entry.ID,
		Title:        entry.Title,
		Description:  entry.Description,
		StartsAt:     entry.StartsAt,
		EndsAt:       entry.EndsAt,
		Importance:   string(entry.Importance),
		Completed:    entry.Completed,
		SourceTodoID: entry.SourceTodoID,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}

type createResp struct {
	Entries []entryResp `json:"entries"`
}

func (h *handler) newCreateResp(out planning.CreateOutput) createResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newEntryResp(e)
	}
	return createResp{Entries: entries}
}

type listResp struct {
	Entries []entryResp `json:"entries"`
}

func (h *handler) newListResp(out planning.ListOutput) listResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newEntryResp(e)
	}
	return listResp{Entries: entries}
}

type detailResp struct {
	Entry entryResp `json:"entry"`
}

func (h *handler) newDetailResp(out planning.DetailOutput) detailResp {
	return detailResp{Entry: newEntryResp(out.Entry)}
}

type updateResp struct {
	Entry entryResp `json:"entry"`
}

func (h *handler) newUpdateResp(out planning.UpdateOutput) updateResp {
	return updateResp{Entry: newEntryResp(out.Entry)}
}
