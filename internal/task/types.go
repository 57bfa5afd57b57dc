package task

import "ai-task-tracker/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Title string
}

// UpdateInput is a full replacement of a task.
// BodyID is the id carried in the request body, if any; ID comes from the path.
type UpdateInput struct {
	ID            string
	BodyID        string
	Title         string
	Completed     bool
	Priority      model.Priority
	EstimatedTime string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task     model.Task
	Enriched bool
}

type ListOutput struct {
	Tasks []model.Task
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
