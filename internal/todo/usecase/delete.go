package usecase

import (
	"context"

	"dayplanner/internal/todo"
	repo "dayplanner/internal/todo/repository"
)

// Delete removes the todo. The mirror goes first: if the todo delete then
// fails, the next sync recreates the mirror, whereas the reverse order
// could leave an orphan no sync would ever clean up.
func (uc *implUseCase) Delete(ctx context.Context, ownerID, id string) error {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTodo: %v", err)
		return err
	}
	if existing.ID == "" {
		return todo.ErrTodoNotFound
	}

	if err := uc.mirror.DeleteMirrorForTodo(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteMirrorForTodo: %v", err)
		return err
	}

	if err := uc.repo.DeleteTodo(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	return nil
}
