package model

// Priority is the AI-suggested urgency label of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists the recognised labels in matching order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValid reports whether p is one of the recognised labels.
func (p Priority) IsValid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// Task is a titled, completable work item.
// Empty Priority / EstimatedTime mean "absent".
type Task struct {
	ID            string
	Title         string
	Completed     bool
	Priority      Priority
	EstimatedTime string
}
