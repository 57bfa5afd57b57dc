package usecase

import (
	"context"
	"strings"

	"ai-task-tracker/internal/task"
	repo "ai-task-tracker/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, uc.mapRepoError(ctx, "Detail GetTask", err)
	}
	return task.DetailOutput{Task: t}, nil
}

// Update replaces every field of an existing Task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.BodyID != "" && input.BodyID != input.ID {
		return task.UpdateOutput{}, task.ErrIDMismatch
	}
	if strings.TrimSpace(input.Title) == "" {
		return task.UpdateOutput{}, task.ErrEmptyTitle
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return task.UpdateOutput{}, task.ErrInvalidPriority
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:            input.ID,
		Title:         input.Title,
		Completed:     input.Completed,
		Priority:      input.Priority,
		EstimatedTime: input.EstimatedTime,
	})
	if err != nil {
		return task.UpdateOutput{}, uc.mapRepoError(ctx, "Update UpdateTask", err)
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete DeleteTask", err)
	}
	return nil
}
