package http

import (
	"time"

	"dayplanner/internal/note"
)

// --- Request DTOs ---

type notebookReq struct {
	ID   string `json:"-"`
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type createNoteReq struct {
	Title      string  `json:"title"       binding:"required,min=1,max=255"`
	Content    string  `json:"content"`
	NotebookID *string `json:"notebook_id"`
}

func (r createNoteReq) toInput(ownerID string) note.CreateNoteInput {
	return note.CreateNoteInput{
		OwnerID:    ownerID,
		NotebookID: r.NotebookID,
		Title:      r.Title,
		Content:    r.Content,
	}
}

type updateNoteReq struct {
	ID             string  `json:"-"`
	Title          string  `json:"title"   binding:"omitempty,min=1,max=255"`
	Content        string  `json:"content"`
	NotebookID     *string `json:"notebook_id"`
	DetachNotebook bool    `json:"detach_notebook"`
}

func (r updateNoteReq) toInput(ownerID string) note.UpdateNoteInput {
	return note.UpdateNoteInput{
		OwnerID:        ownerID,
		ID:             r.ID,
		Title:          r.Title,
		Content:        r.Content,
		NotebookID:     r.NotebookID,
		DetachNotebook: r.DetachNotebook,
	}
}

// --- Response DTOs ---

type notebookResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newNotebookResp(nb note.Notebook) notebookResp {
	return notebookResp{ID: nb.ID, Name: nb.Name, CreatedAt: nb.CreatedAt, UpdatedAt: nb.UpdatedAt}
}

type noteResp struct {
	ID         string    `json:"id"`
	NotebookID *string   `json:"notebook_id,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Pinned     bool      `json:"pinned"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newNoteResp(n note.Note) noteResp {
	return noteResp{
		ID:         n.ID,
		NotebookID: n.NotebookID,
		Title:      n.Title,
		Content:    n.Content,
		Pinned:     n.Pinned,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

type notebookOutResp struct {
	Notebook notebookResp `json:"notebook"`
}

func (h *handler) newNotebookResp(out note.NotebookOutput) notebookOutResp {
	return notebookOutResp{Notebook: newNotebookResp(out.Notebook)}
}

type listNotebooksResp struct {
	Notebooks []notebookResp `json:"notebooks"`
}

func (h *handler) newListNotebooksResp(out note.ListNotebooksOutput) listNotebooksResp {
	notebooks := make([]notebookResp, len(out.Notebooks))
	for i, nb := range out.Notebooks {
		notebooks[i] = newNotebookResp(nb)
	}
	return listNotebooksResp{Notebooks: notebooks}
}

type noteOutResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newNoteResp(out note.NoteOutput) noteOutResp {
	return noteOutResp{Note: newNoteResp(out.Note)}
}

type listNotesResp struct {
	Notes []noteResp `json:"notes"`
}

func (h *handler) newListNotesResp(out note.ListNotesOutput) listNotesResp {
	notes := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		notes[i] = newNoteResp(n)
	}
	return listNotesResp{Notes: notes}
}
