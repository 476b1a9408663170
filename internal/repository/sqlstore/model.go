package sqlstore

import (
	"database/sql"
	"fmt"

	"task-manager/internal/domain"
)

// taskRow mirrors the tasks table
type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	DueDate     sql.NullString `db:"due_date"`
	Priority    string         `db:"priority"`
	CategoryID  sql.NullInt64  `db:"category_id"`
	Completed   bool           `db:"completed"`
	CreatedAt   string         `db:"created_at"`
	CompletedAt sql.NullString `db:"completed_at"`
}

// categoryRow mirrors the categories table
type categoryRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Color string `db:"color"`
	Icon  string `db:"icon"`
}

func taskToRow(t domain.Task) taskRow {
	return taskRow{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     FormatDateForDB(t.DueDate),
		Priority:    string(t.Priority),
		CategoryID:  FormatIDForDB(t.CategoryID),
		Completed:   t.Completed,
		CreatedAt:   FormatTimeForDB(t.CreatedAt),
		CompletedAt: FormatTimePtrForDB(t.CompletedAt),
	}
}

func (r taskRow) toDomain() (domain.Task, error) {
	createdAt, err := ParseTimeFromDB(r.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d created_at: %w", r.ID, err)
	}

	t := domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.Priority(r.Priority),
		Completed:   r.Completed,
		CreatedAt:   createdAt,
	}
	if r.DueDate.Valid {
		due, err := domain.ParseDate(r.DueDate.String)
		if err != nil {
			return domain.Task{}, fmt.Errorf("task %d due_date: %w", r.ID, err)
		}
		t.DueDate = &due
	}
	if r.CategoryID.Valid {
		id := r.CategoryID.Int64
		t.CategoryID = &id
	}
	if r.CompletedAt.Valid {
		at, err := ParseTimeFromDB(r.CompletedAt.String)
		if err != nil {
			return domain.Task{}, fmt.Errorf("task %d completed_at: %w", r.ID, err)
		}
		t.CompletedAt = &at
	}
	return t, nil
}

func categoryToRow(c domain.Category) categoryRow {
	return categoryRow{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Name: r.Name, Color: r.Color, Icon: r.Icon}
}
