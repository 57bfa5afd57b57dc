package usecase

import (
	"context"
	"errors"

	"ai-task-tracker/internal/task"
	repo "ai-task-tracker/internal/task/repository"
)

// mapRepoError turns repository not-found into the domain error.
// Not-found is an expected outcome and is not logged as an error.
func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	uc.l.Errorf(ctx, "uc.%s: %v", op, err)
	return err
}
