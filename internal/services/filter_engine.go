package services

import (
	"strings"

	"task-manager/internal/domain"
)

// FilterEngine narrows task collections by query, category and status.
type FilterEngine struct {
	clock Clock
}

// NewFilterEngine creates a filter engine that resolves "today" from clock
func NewFilterEngine(clock Clock) *FilterEngine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FilterEngine{clock: clock}
}

// Filter returns the tasks matching every criterion, in input order.
func (f *FilterEngine) Filter(tasks []domain.Task, criteria FilterCriteria) []domain.Task {
	return FilterOn(tasks, criteria, Today(f.clock))
}

// FilterOn is Filter with an explicit current date.
func FilterOn(tasks []domain.Task, criteria FilterCriteria, today domain.Date) []domain.Task {
	query := strings.ToLower(criteria.Query)
	result := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matchesQuery(task, query) {
			continue
		}
		if criteria.CategoryID != nil && !task.InCategory(*criteria.CategoryID) {
			continue
		}
		if !MatchesStatus(task, criteria.Status, today) {
			continue
		}
		result = append(result, task)
	}
	return result
}

// matchesQuery expects an already lowercased query
func matchesQuery(task domain.Task, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(task.Title), query) ||
		strings.Contains(strings.ToLower(task.Description), query)
}

// MatchesStatus reports whether a task passes a status filter. The today filter
// ignores completion while overdue only matches incomplete tasks. Unknown
// filters match everything.
func MatchesStatus(task domain.Task, status StatusFilter, today domain.Date) bool {
	switch status {
	case StatusPending:
		return !task.Completed
	case StatusCompleted:
		return task.Completed
	case StatusToday:
		return task.IsDueOn(today)
	case StatusOverdue:
		return task.IsOverdue(today)
	default:
		return true
	}
}
