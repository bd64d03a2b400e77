package usecase

import (
	"context"

	"dayplanner/internal/planning"
	repo "dayplanner/internal/planning/repository"
)

// SyncFromTodo reconciles a todo's mirror after any mutation that could
// touch its due date, title, importance, or status:
//
//   - no due date → delete any mirror (deleting zero rows is fine)
//   - mirror exists → update it in place, keeping its id stable
//   - no mirror → create one spanning [dueAt, dueAt + 1h)
//
// The caller has already verified the todo belongs to the operating user.
// Per-entity serialization of the read-then-write step is the storage
// layer's concern (uniqueness constraint on source_todo_id).
func (uc *implUseCase) SyncFromTodo(ctx context.Context, todo planning.TodoSnapshot) error {
	if todo.DueAt == nil {
		if err := uc.repo.DeleteBySourceTodo(ctx, todo.OwnerID, todo.ID); err != nil {
			uc.l.Errorf(ctx, "uc.SyncFromTodo DeleteBySourceTodo: %v", err)
			return err
		}
		return nil
	}

	existing, err := uc.findMirror(ctx, todo.OwnerID, todo.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncFromTodo findMirror: %v", err)
		return err
	}

	startsAt := *todo.DueAt
	endsAt := startsAt.Add(planning.MinDuration)
	completed := todo.Status.IsDone()

	if existing.ID != "" {
		_, err = uc.repo.UpdateEntry(ctx, repo.UpdateEntryOptions{
			ID:          existing.ID,
			OwnerID:     existing.OwnerID,
			Title:       todo.Title,
			Description: existing.Description,
			StartsAt:    startsAt,
			EndsAt:      endsAt,
			Importance:  todo.Importance,
			Completed:   completed,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.SyncFromTodo UpdateEntry: %v", err)
			return err
		}
		return nil
	}

	_, err = uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
		OwnerID:      todo.OwnerID,
		Title:        todo.Title,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		Importance:   todo.Importance,
		Completed:    completed,
		SourceTodoID: todo.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncFromTodo CreateEntry: %v", err)
		return err
	}
	return nil
}

// SyncStatusOnly updates only the mirror's completion flag. A missing
// mirror makes this a no-op.
func (uc *implUseCase) SyncStatusOnly(ctx context.Context, todo planning.TodoSnapshot) error {
	existing, err := uc.findMirror(ctx, todo.OwnerID, todo.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncStatusOnly findMirror: %v", err)
		return err
	}
	if existing.ID == "" {
		return nil
	}

	existing.Completed = todo.Status.IsDone()
	return uc.updateMirror(ctx, "uc.SyncStatusOnly", existing)
}

// SyncImportanceOnly updates only the mirror's importance. A missing
// mirror makes this a no-op.
func (uc *implUseCase) SyncImportanceOnly(ctx context.Context, todo planning.TodoSnapshot) error {
	existing, err := uc.findMirror(ctx, todo.OwnerID, todo.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncImportanceOnly findMirror: %v", err)
		return err
	}
	if existing.ID == "" {
		return nil
	}

	existing.Importance = todo.Importance
	return uc.updateMirror(ctx, "uc.SyncImportanceOnly", existing)
}

// DeleteMirrorForTodo removes the mirror ahead of the todo's own
// deletion, so no orphaned mirror can outlive its source.
func (uc *implUseCase) DeleteMirrorForTodo(ctx context.Context, ownerID, todoID string) error {
	if err := uc.repo.DeleteBySourceTodo(ctx, ownerID, todoID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteMirrorForTodo DeleteBySourceTodo: %v", err)
		return err
	}
	return nil
}

// findMirror returns the todo's mirror, or a zero-value entry when none
// exists. More than one mirror violates the uniqueness invariant and is
// surfaced as ErrMirrorConflict.
func (uc *implUseCase) findMirror(ctx context.Context, ownerID, todoID string) (planning.Entry, error) {
	mirrors, err := uc.repo.ListBySourceTodo(ctx, ownerID, todoID)
	if err != nil {
		return planning.Entry{}, err
	}
	switch len(mirrors) {
	case 0:
		return planning.Entry{}, nil
	case 1:
		return mirrors[0], nil
	default:
		return planning.Entry{}, planning.ErrMirrorConflict
	}
}

func (uc *implUseCase) updateMirror(ctx context.Context, op string, entry planning.Entry) error {
	_, err := uc.repo.UpdateEntry(ctx, repo.UpdateEntryOptions{
		ID:          entry.ID,
		OwnerID:     entry.OwnerID,
		Title:       entry.Title,
		Description: entry.Description,
		StartsAt:    entry.StartsAt,
		EndsAt:      entry.EndsAt,
		Importance:  entry.Importance,
		Completed:   entry.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s UpdateEntry: %v", op, err)
		return err
	}
	return nil
}
