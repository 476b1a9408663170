package services

import (
	"task-manager/internal/domain"
)

// FilterCounts holds the number of tasks matching each status filter
type FilterCounts struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Today     int `json:"today"`
	Overdue   int `json:"overdue"`
}

// Get returns the count for a status filter
func (c FilterCounts) Get(status StatusFilter) int {
	switch status {
	case StatusPending:
		return c.Pending
	case StatusCompleted:
		return c.Completed
	case StatusToday:
		return c.Today
	case StatusOverdue:
		return c.Overdue
	default:
		return c.All
	}
}

// Progress summarizes completion across a task collection
type Progress struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Percent   float64 `json:"percent"`
}

// Summary bundles everything the sidebar and header display
type Summary struct {
	Counts     FilterCounts  `json:"counts"`
	Categories map[int64]int `json:"categories"`
	Progress   Progress      `json:"progress"`
}

// Summarizer computes counts and progress using the same predicates as the filter engine
type Summarizer struct {
	clock Clock
}

// NewSummarizer creates a Summarizer
func NewSummarizer(clock Clock) *Summarizer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Summarizer{clock: clock}
}

// Counts returns the number of tasks matching each status filter
func (s *Summarizer) Counts(tasks []domain.Task) FilterCounts {
	today := Today(s.clock)
	var c FilterCounts
	for _, t := range tasks {
		c.All++
		if MatchesStatus(t, StatusPending, today) {
			c.Pending++
		}
		if MatchesStatus(t, StatusCompleted, today) {
			c.Completed++
		}
		if MatchesStatus(t, StatusToday, today) {
			c.Today++
		}
		if MatchesStatus(t, StatusOverdue, today) {
			c.Overdue++
		}
	}
	return c
}

// CategoryCounts returns the number of incomplete tasks per category id.
// Uncategorized tasks are not counted.
func (s *Summarizer) CategoryCounts(tasks []domain.Task) map[int64]int {
	counts := make(map[int64]int)
	for _, t := range tasks {
		if t.Completed || t.CategoryID == nil {
			continue
		}
		counts[*t.CategoryID]++
	}
	return counts
}

// Progress returns completion totals. Percent is 0 for an empty collection.
func (s *Summarizer) Progress(tasks []domain.Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	p.Pending = p.Total - p.Completed
	if p.Total > 0 {
		p.Percent = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

// Summarize computes counts, category counts and progress in one call
func (s *Summarizer) Summarize(tasks []domain.Task) Summary {
	return Summary{
		Counts:     s.Counts(tasks),
		Categories: s.CategoryCounts(tasks),
		Progress:   s.Progress(tasks),
	}
}

// Title returns the list heading for the given criteria. A selected category
// wins over the status filter; a dangling category falls back to the status title.
func Title(criteria FilterCriteria, categories []domain.Category) string {
	if name, ok := domain.CategoryName(categories, criteria.CategoryID); ok {
		return name + " Tasks"
	}

	switch criteria.Status {
	case StatusPending:
		return "Pending Tasks"
	case StatusCompleted:
		return "Completed Tasks"
	case StatusToday:
		return "Today's Tasks"
	case StatusOverdue:
		return "Overdue Tasks"
	default:
		return "All Tasks"
	}
}
