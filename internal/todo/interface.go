package todo

import "context"

// UseCase is the todo surface consumed by the HTTP delivery layer. Every
// mutation that can affect the mirror invariant drives the planning
// synchronizer before returning.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, ownerID, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	// ToggleStatus advances the quick-toggle cycle
	// TODO → IN_PROGRESS → DONE → TODO and syncs only the mirror's
	// completion flag.
	ToggleStatus(ctx context.Context, ownerID, id string) (UpdateOutput, error)
	// MoveImportance reassigns the board lane and syncs only the mirror's
	// importance.
	MoveImportance(ctx context.Context, input MoveImportanceInput) (UpdateOutput, error)
	// Delete removes the todo and its mirror, mirror first, so no orphan
	// can survive a partial failure.
	Delete(ctx context.Context, ownerID, id string) error
}
