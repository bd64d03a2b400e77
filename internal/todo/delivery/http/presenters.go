package http

import (
	"time"

	"dayplanner/internal/model"
	"dayplanner/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	Title      string     `json:"title"      binding:"required,min=1,max=255"`
	Importance string     `json:"importance" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueAt      *time.Time `json:"due_at"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(ownerID string) todo.CreateInput {
	return todo.CreateInput{
		OwnerID:    ownerID,
		Title:      r.Title,
		Importance: model.Importance(r.Importance),
		DueAt:      r.DueAt,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput(ownerID string) todo.ListInput {
	return todo.ListInput{
		OwnerID: ownerID,
		Status:  model.Status(r.Status),
	}
}

// ---

type updateReq struct {
	ID         string     `json:"-"` // populated from URI param
	Title      string     `json:"title"      binding:"omitempty,min=1,max=255"`
	Importance string     `json:"importance" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Status     string     `json:"status"     binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueAt      *time.Time `json:"due_at"`
	ClearDue   bool       `json:"clear_due"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput(ownerID string) todo.UpdateInput {
	return todo.UpdateInput{
		OwnerID:    ownerID,
		ID:         r.ID,
		Title:      r.Title,
		Importance: model.Importance(r.Importance),
		Status:     model.Status(r.Status),
		DueAt:      r.DueAt,
		ClearDue:   r.ClearDue,
	}
}

// ---

type moveReq struct {
	ID         string `json:"-"`
	Importance string `json:"importance" binding:"required,oneof=LOW MEDIUM HIGH"`
}

func (r moveReq) validate() error { return nil }

func (r moveReq) toInput(ownerID string) todo.MoveImportanceInput {
	return todo.MoveImportanceInput{
		OwnerID:    ownerID,
		ID:         r.ID,
		Importance: model.Importance(r.Importance),
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Importance string     `json:"importance"`
	Status     string     `json:"status"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func newTodoResp(t todo.Todo) todoResp {
	return todoResp{
		ID:         t.ID,
		Title:      t.Title,
		Importance: string(t.Importance),
		Status:     string(t.Status),
		DueAt:      t.DueAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

type createResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newCreateResp(out todo.CreateOutput) createResp {
	return createResp{Todo: newTodoResp(out.Todo)}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		todos[i] = newTodoResp(t)
	}
	return listResp{Todos: todos}
}

type detailResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newDetailResp(out todo.DetailOutput) detailResp {
	return detailResp{Todo: newTodoResp(out.Todo)}
}

type updateResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newUpdateResp(out todo.UpdateOutput) updateResp {
	return updateResp{Todo: newTodoResp(out.Todo)}
}
