package repository

import (
	"context"

	"ai-task-tracker/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Lookups by an unknown id return ErrNotFound.
type TaskRepository interface {
	// NewTask allocates a fresh id and returns an unsaved draft.
	NewTask(title string) model.Task
	InsertTask(ctx context.Context, task model.Task) error
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
