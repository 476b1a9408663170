package services

import (
	"sort"

	"task-manager/internal/domain"
)

// SortEngine orders tasks: incomplete first, then by descending priority,
// then by ascending due date with undated tasks last. Ties keep input order.
type SortEngine struct{}

// NewSortEngine creates a new SortEngine
func NewSortEngine() *SortEngine {
	return &SortEngine{}
}

// Sort returns a sorted copy; the input slice is not modified.
func (s *SortEngine) Sort(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted
}

// Less reports whether a sorts before b.
func Less(a, b domain.Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra > rb
	}
	switch {
	case a.DueDate == nil:
		return false
	case b.DueDate == nil:
		return true
	default:
		return a.DueDate.Before(*b.DueDate)
	}
}
