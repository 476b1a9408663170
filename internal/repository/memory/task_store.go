package memory

import (
	"context"
	"time"

	"task-manager/internal/domain"
)

// TaskStore keeps tasks in memory. It is safe for concurrent use.
type TaskStore struct {
	table *table[domain.Task]
	now   func() time.Time
}

// NewTaskStore creates an empty in-memory task store
func NewTaskStore(opts Options) *TaskStore {
	return &TaskStore{
		table: newTable("task",
			func(t domain.Task) int64 { return t.ID },
			func(t domain.Task, id int64) domain.Task { t.ID = id; return t },
			domain.Task.Clone,
			opts,
		),
		now: time.Now,
	}
}

// GetAll returns copies of every task in insertion order
func (s *TaskStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	return s.table.all(ctx)
}

// GetByID returns a copy of the task with the given id
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return s.table.get(ctx, id)
}

// Create stores task under the next free id. An unset priority becomes medium
// and a zero CreatedAt is stamped with the current time.
func (s *TaskStore) Create(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if task.Priority == domain.PriorityUnset {
		task.Priority = domain.DefaultPriority
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.now()
	}
	return s.table.insert(ctx, task)
}

// Update replaces the mutable fields of a stored task. CreatedAt is kept.
func (s *TaskStore) Update(ctx context.Context, id int64, task domain.Task) (*domain.Task, error) {
	return s.table.replace(ctx, id, func(existing domain.Task) domain.Task {
		task.CreatedAt = existing.CreatedAt
		return task
	})
}

// Delete removes a task
func (s *TaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}
