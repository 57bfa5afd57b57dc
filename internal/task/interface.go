package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create builds a draft task, enriches it on a best-effort basis and stores it.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	// Update replaces every field of the task except its id.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error
}
