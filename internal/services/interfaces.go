package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-manager/internal/domain"
)

// Clock supplies the current time. Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Today returns the clock's current calendar date in local time.
func Today(c Clock) domain.Date {
	return domain.DateOf(c.Now())
}

// TaskStore is the persistence contract for tasks.
// GetByID, Update and Delete return a NotFound AppError for unknown ids.
type TaskStore interface {
	GetAll(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, task domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id int64, task domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CategoryStore is the persistence contract for categories.
type CategoryStore interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id int64, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// StatusFilter selects tasks by completion state or due date
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
	StatusToday     StatusFilter = "today"
	StatusOverdue   StatusFilter = "overdue"
)

// StatusFilters lists every status filter in sidebar order.
var StatusFilters = []StatusFilter{StatusAll, StatusPending, StatusCompleted, StatusToday, StatusOverdue}

// ParseStatusFilter parses a status filter name. Empty input means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	v := StatusFilter(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return StatusAll, nil
	}
	for _, f := range StatusFilters {
		if f == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown status %q: expected one of all, pending, completed, today, overdue", s)
}

// FilterCriteria narrows a task collection. All criteria must match.
type FilterCriteria struct {
	Query      string       `json:"query,omitempty"`
	CategoryID *int64       `json:"categoryId,omitempty"`
	Status     StatusFilter `json:"status,omitempty"`
}

// TaskFilter selects the tasks matching a set of criteria
type TaskFilter interface {
	Filter(tasks []domain.Task, criteria FilterCriteria) []domain.Task
}

// TaskSorter orders tasks for display
type TaskSorter interface {
	Sort(tasks []domain.Task) []domain.Task
}

// TaskLifecycle handles task creation, updates, completion and deletion.
// Delete confirms removal by returning a nil error; unknown ids fail with NotFound.
type TaskLifecycle interface {
	Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	ToggleComplete(ctx context.Context, task domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryService handles category CRUD
type CategoryService interface {
	Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Clock      Clock
	Filter     TaskFilter
	Sorter     TaskSorter
	Tasks      TaskLifecycle
	Categories CategoryService
	Summary    *Summarizer
}
