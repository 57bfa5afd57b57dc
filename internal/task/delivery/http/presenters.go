package http

import (
	"ai-task-tracker/internal/model"
	"ai-task-tracker/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title string `json:"title" binding:"required"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{Title: r.Title}
}

// updateReq is the full Task representation. Omitted fields reset to their zero value.
// An empty priority or estimate is treated as null; priority labels are checked by the use case.
type updateReq struct {
	ID            string  `json:"-"` // populated from URI param
	BodyID        string  `json:"id"`
	Title         string  `json:"title"          binding:"required"`
	Completed     bool    `json:"completed"`
	Priority      *string `json:"priority"`
	EstimatedTime *string `json:"estimated_time"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:            r.ID,
		BodyID:        r.BodyID,
		Title:         r.Title,
		Completed:     r.Completed,
		Priority:      model.Priority(deref(r.Priority)),
		EstimatedTime: deref(r.EstimatedTime),
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Completed     bool    `json:"completed"`
	Priority      *string `json:"priority"`
	EstimatedTime *string `json:"estimated_time"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Completed:     t.Completed,
		Priority:      optional(string(t.Priority)),
		EstimatedTime: optional(t.EstimatedTime),
	}
}

func (h *handler) newListResp(out task.ListOutput) []taskResp {
	items := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		items[i] = newTaskResp(t)
	}
	return items
}

// optional maps "" to JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
