package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"dayplanner/internal/note"
	"dayplanner/internal/note/repository"
	"dayplanner/internal/note/usecase"
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

type mockNoteRepo struct {
	notebooks []note.Notebook
	notes     []note.Note
	nextID    int
}

func (m *mockNoteRepo) newID(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *mockNoteRepo) CreateNotebook(ctx context.Context, opt repository.CreateNotebookOptions) (note.Notebook, error) {
	nb := note.Notebook{ID: m.newID("nb"), OwnerID: opt.OwnerID, Name: opt.Name}
	m.notebooks = append(m.notebooks, nb)
	return nb, nil
}

func (m *mockNoteRepo) GetOneNotebook(ctx context.Context, opt repository.GetOneOptions) (note.Notebook, error) {
	for _, nb := range m.notebooks {
		if nb.ID == opt.ID && nb.OwnerID == opt.OwnerID {
			return nb, nil
		}
	}
	return note.Notebook{}, nil
}

func (m *mockNoteRepo) ListNotebooks(ctx context.Context, ownerID string) ([]note.Notebook, error) {
	var out []note.Notebook
	for _, nb := range m.notebooks {
		if nb.OwnerID == ownerID {
			out = append(out, nb)
		}
	}
	return out, nil
}

func (m *mockNoteRepo) UpdateNotebook(ctx context.Context, opt repository.UpdateNotebookOptions) (note.Notebook, error) {
	for i, nb := range m.notebooks {
		if nb.ID == opt.ID && nb.OwnerID == opt.OwnerID {
			m.notebooks[i].Name = opt.Name
			return m.notebooks[i], nil
		}
	}
	return note.Notebook{}, nil
}

func (m *mockNoteRepo) DeleteNotebook(ctx context.Context, ownerID, id string) error {
	for i, nb := range m.notebooks {
		if nb.ID == id && nb.OwnerID == ownerID {
			m.notebooks = append(m.notebooks[:i], m.notebooks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockNoteRepo) CreateNote(ctx context.Context, opt repository.CreateNoteOptions) (note.Note, error) {
	n := note.Note{
		ID:         m.newID("note"),
		OwnerID:    opt.OwnerID,
		NotebookID: opt.NotebookID,
		Title:      opt.Title,
		Content:    opt.Content,
	}
	m.notes = append(m.notes, n)
	return n, nil
}

func (m *mockNoteRepo) GetOneNote(ctx context.Context, opt repository.GetOneOptions) (note.Note, error) {
	for _, n := range m.notes {
		if n.ID == opt.ID && n.OwnerID == opt.OwnerID {
			return n, nil
		}
	}
	return note.Note{}, nil
}

func (m *mockNoteRepo) ListNotes(ctx context.Context, opt repository.ListNotesOptions) ([]note.Note, error) {
	var out []note.Note
	for _, n := range m.notes {
		if n.OwnerID != opt.OwnerID {
			continue
		}
		if opt.NotebookID != nil {
			if n.NotebookID == nil || *n.NotebookID != *opt.NotebookID {
				continue
			}
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *mockNoteRepo) UpdateNote(ctx context.Context, opt repository.UpdateNoteOptions) (note.Note, error) {
	for i, n := range m.notes {
		if n.ID == opt.ID && n.OwnerID == opt.OwnerID {
			m.notes[i].NotebookID = opt.NotebookID
			m.notes[i].Title = opt.Title
			m.notes[i].Content = opt.Content
			m.notes[i].Pinned = opt.Pinned
			return m.notes[i], nil
		}
	}
	return note.Note{}, nil
}

func (m *mockNoteRepo) DetachNotes(ctx context.Context, ownerID, notebookID string) error {
	for i, n := range m.notes {
		if n.OwnerID == ownerID && n.NotebookID != nil && *n.NotebookID == notebookID {
			m.notes[i].NotebookID = nil
		}
	}
	return nil
}

func (m *mockNoteRepo) DeleteNote(ctx context.Context, ownerID, id string) error {
	for i, n := range m.notes {
		if n.ID == id && n.OwnerID == ownerID {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestUseCase(repo *mockNoteRepo) note.UseCase {
	return usecase.New(repo, &mockLogger{})
}

// tests

func TestNotebookLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{}
	uc := newTestUseCase(repo)

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := uc.CreateNotebook(ctx, note.CreateNotebookInput{OwnerID: "u1", Name: "   "})
		if err != note.ErrNameRequired {
			t.Fatalf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("create and rename", func(t *testing.T) {
		out, err := uc.CreateNotebook(ctx, note.CreateNotebookInput{OwnerID: "u1", Name: "Work"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		renamed, err := uc.RenameNotebook(ctx, note.RenameNotebookInput{
			OwnerID: "u1", ID: out.Notebook.ID, Name: "Projects",
		})
		if err != nil {
			t.Fatalf("rename: %v", err)
		}
		if renamed.Notebook.Name != "Projects" {
			t.Fatalf("expected renamed notebook, got %q", renamed.Notebook.Name)
		}
	})

	t.Run("rename unknown notebook", func(t *testing.T) {
		_, err := uc.RenameNotebook(ctx, note.RenameNotebookInput{OwnerID: "u1", ID: "missing", Name: "X"})
		if err != note.ErrNotebookNotFound {
			t.Fatalf("expected ErrNotebookNotFound, got %v", err)
		}
	})
}

func TestDeleteNotebookDetachesNotes(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{}
	uc := newTestUseCase(repo)

	nb, err := uc.CreateNotebook(ctx, note.CreateNotebookInput{OwnerID: "u1", Name: "Work"})
	if err != nil {
		t.Fatalf("create notebook: %v", err)
	}
	nbID := nb.Notebook.ID

	filed, err := uc.CreateNote(ctx, note.CreateNoteInput{OwnerID: "u1", NotebookID: &nbID, Title: "Meeting notes"})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if _, err := uc.CreateNote(ctx, note.CreateNoteInput{OwnerID: "u1", Title: "Loose note"}); err != nil {
		t.Fatalf("create loose note: %v", err)
	}

	if err := uc.DeleteNotebook(ctx, "u1", nbID); err != nil {
		t.Fatalf("delete notebook: %v", err)
	}

	got, err := findNote(ctx, uc, "u1", filed.Note.ID)
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if got.NotebookID != nil {
		t.Fatalf("expected note detached from deleted notebook, got %v", *got.NotebookID)
	}
	if len(repo.notebooks) != 0 {
		t.Fatalf("expected notebook removed, %d remain", len(repo.notebooks))
	}
}

// findNote reads a note back through the public surface.
func findNote(ctx context.Context, uc note.UseCase, ownerID, id string) (note.Note, error) {
	out, err := uc.ListNotes(ctx, note.ListNotesInput{OwnerID: ownerID})
	if err != nil {
		return note.Note{}, err
	}
	for _, n := range out.Notes {
		if n.ID == id {
			return n, nil
		}
	}
	return note.Note{}, note.ErrNoteNotFound
}

func TestNoteUpdateAndPin(t *testing.T) {
	ctx := context.Background()
	repo := &mockNoteRepo{}
	uc := newTestUseCase(repo)

	nb, _ := uc.CreateNotebook(ctx, note.CreateNotebookInput{OwnerID: "u1", Name: "Work"})
	nbID := nb.Notebook.ID

	created, err := uc.CreateNote(ctx, note.CreateNoteInput{OwnerID: "u1", Title: "Draft", Content: "v1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("file under notebook", func(t *testing.T) {
		updated, err := uc.UpdateNote(ctx, note.UpdateNoteInput{
			OwnerID: "u1", ID: created.Note.ID, NotebookID: &nbID, Content: "v2",
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Note.NotebookID == nil || *updated.Note.NotebookID != nbID {
			t.Fatal("expected note filed under notebook")
		}
		if updated.Note.Title != "Draft" || updated.Note.Content != "v2" {
			t.Fatalf("unexpected note after update: %+v", updated.Note)
		}
	})

	t.Run("unknown notebook rejected", func(t *testing.T) {
		bad := "missing"
		_, err := uc.UpdateNote(ctx, note.UpdateNoteInput{OwnerID: "u1", ID: created.Note.ID, NotebookID: &bad})
		if err != note.ErrNotebookNotFound {
			t.Fatalf("expected ErrNotebookNotFound, got %v", err)
		}
	})

	t.Run("detach", func(t *testing.T) {
		updated, err := uc.UpdateNote(ctx, note.UpdateNoteInput{
			OwnerID: "u1", ID: created.Note.ID, DetachNotebook: true,
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Note.NotebookID != nil {
			t.Fatal("expected note detached")
		}
	})

	t.Run("toggle pin", func(t *testing.T) {
		pinned, err := uc.TogglePin(ctx, "u1", created.Note.ID)
		if err != nil {
			t.Fatalf("pin: %v", err)
		}
		if !pinned.Note.Pinned {
			t.Fatal("expected note pinned")
		}

		unpinned, err := uc.TogglePin(ctx, "u1", created.Note.ID)
		if err != nil {
			t.Fatalf("unpin: %v", err)
		}
		if unpinned.Note.Pinned {
			t.Fatal("expected note unpinned")
		}
	})

	t.Run("delete unknown note", func(t *testing.T) {
		if err := uc.DeleteNote(ctx, "u1", "missing"); err != note.ErrNoteNotFound {
			t.Fatalf("expected ErrNoteNotFound, got %v", err)
		}
	})
}
