package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"ai-task-tracker/internal/model"
	"ai-task-tracker/internal/task/repository"
	"ai-task-tracker/pkg/log"
)

// implRepository keeps tasks in insertion order behind a single mutex.
// Every method holds mu for its whole duration, reads included.
type implRepository struct {
	mu    sync.Mutex
	tasks []model.Task
	newID func() string
	l     log.Logger
}

// New creates an in-memory Repository for the task domain.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		tasks: make([]model.Task, 0),
		newID: func() string { return uuid.NewString() },
		l:     l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}

// indexOf must be called with mu held.
func (r *implRepository) indexOf(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
