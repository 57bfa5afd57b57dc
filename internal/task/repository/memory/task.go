package memory

import (
	"context"
	"slices"

	"ai-task-tracker/internal/model"
	repo "ai-task-tracker/internal/task/repository"
)

// NewTask returns an unsaved draft with a freshly allocated id.
func (r *implRepository) NewTask(title string) model.Task {
	return model.Task{
		ID:        r.newID(),
		Title:     title,
		Completed: false,
	}
}

// InsertTask appends a fully-formed task.
func (r *implRepository) InsertTask(ctx context.Context, task model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(task.ID) >= 0 {
		r.l.Errorf(ctx, "%s: id %s already exists", r.dsn("InsertTask"), task.ID)
		return repo.ErrDuplicateID
	}

	r.tasks = append(r.tasks, task)
	return nil
}

// ListTasks returns a copy of all live tasks in insertion order.
func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.tasks), nil
}

// GetTask retrieves a single task by id.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, repo.ErrNotFound
	}
	return r.tasks[i], nil
}

// UpdateTask replaces every field of the stored task. The id never changes.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return model.Task{}, repo.ErrNotFound
	}

	r.tasks[i] = model.Task{
		ID:            r.tasks[i].ID,
		Title:         opt.Title,
		Completed:     opt.Completed,
		Priority:      opt.Priority,
		EstimatedTime: opt.EstimatedTime,
	}
	return r.tasks[i], nil
}

// DeleteTask removes a task by id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repo.ErrNotFound
	}

	r.tasks = slices.Delete(r.tasks, i, i+1)
	return nil
}
