package sqlstore

import (
	"context"
	"time"

	"task-manager/internal/domain"
)

const taskColumns = `id, title, description, due_date, priority, category_id, completed, created_at, completed_at`

// TaskStore persists tasks in the tasks table
type TaskStore struct {
	db  *DB
	now func() time.Time
}

func (s *TaskStore) toDomain(rows []taskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	for _, r := range rows {
		t, err := r.toDomain()
		if err != nil {
			return nil, HandleDatabaseError("decode task", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// GetAll returns every task ordered by id
func (s *TaskStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	ctx, cancel := s.db.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC`
	rows, err := QueryMultiple[taskRow](ctx, s.db.conn, query, "tasks")
	if err != nil {
		return nil, err
	}
	return s.toDomain(rows)
}

// GetByID retrieves a task by ID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	ctx, cancel := s.db.readContext(ctx)
	defer cancel()

	query := s.db.conn.Rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`)
	row, err := QuerySingle[taskRow](ctx, s.db.conn, query, "task", id, id)
	if err != nil {
		return nil, err
	}

	task, err := row.toDomain()
	if err != nil {
		return nil, HandleDatabaseError("decode task", err)
	}
	return &task, nil
}

// Create inserts task under max(id)+1. An unset priority becomes medium and a
// zero CreatedAt is stamped with the current time.
func (s *TaskStore) Create(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if task.Priority == domain.PriorityUnset {
		task.Priority = domain.DefaultPriority
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.now()
	}

	wctx, cancel := s.db.writeContext(ctx)
	defer cancel()

	insert := `INSERT INTO tasks (` + taskColumns + `)
	VALUES (:id, :title, :description, :due_date, :priority, :category_id, :completed, :created_at, :completed_at)`

	id, err := insertWithNextID(wctx, s.db.conn, "tasks", insert, "task", func(id int64) interface{} {
		task.ID = id
		return taskToRow(task)
	})
	if err != nil {
		return nil, err
	}
	s.db.log.Debug("task created", "id", id)

	return s.GetByID(ctx, id)
}

// Update replaces the mutable fields of a task. id and created_at are kept.
func (s *TaskStore) Update(ctx context.Context, id int64, task domain.Task) (*domain.Task, error) {
	wctx, cancel := s.db.writeContext(ctx)
	defer cancel()

	task.ID = id
	update := `UPDATE tasks
	SET title = :title, description = :description, due_date = :due_date, priority = :priority,
		category_id = :category_id, completed = :completed, completed_at = :completed_at
	WHERE id = :id`

	result, err := s.db.conn.NamedExecContext(wctx, update, taskToRow(task))
	if err != nil {
		return nil, HandleDatabaseError("update task", err)
	}
	if err := ValidateRowsAffected(result, "task", id); err != nil {
		return nil, err
	}
	s.db.log.Debug("task updated", "id", id)

	return s.GetByID(ctx, id)
}

// Delete deletes a task by ID
func (s *TaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := s.db.writeContext(ctx)
	defer cancel()

	result, err := s.db.conn.ExecContext(ctx, s.db.conn.Rebind(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return false, HandleDatabaseError("delete task", err)
	}
	if err := ValidateRowsAffected(result, "task", id); err != nil {
		return false, err
	}
	s.db.log.Debug("task deleted", "id", id)
	return true, nil
}
