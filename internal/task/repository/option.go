package repository

import "ai-task-tracker/internal/model"

// UpdateTaskOptions replaces every field of the task identified by ID.
type UpdateTaskOptions struct {
	ID            string
	Title         string
	Completed     bool
	Priority      model.Priority
	EstimatedTime string
}
