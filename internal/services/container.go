package services

import (
	"context"

	"task-manager/internal/domain"
	"task-manager/internal/validation"
)

// NewServiceContainer wires the services around a pair of stores
func NewServiceContainer(tasks TaskStore, categories CategoryStore, clock Clock, v *validation.Validator) *ServiceContainer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ServiceContainer{
		Clock:      clock,
		Filter:     NewFilterEngine(clock),
		Sorter:     NewSortEngine(),
		Tasks:      NewLifecycleManager(tasks, clock, v),
		Categories: NewCategoryManager(categories, v),
		Summary:    NewSummarizer(clock),
	}
}

// Visible filters then sorts tasks for display
func (c *ServiceContainer) Visible(tasks []domain.Task, criteria FilterCriteria) []domain.Task {
	return c.Sorter.Sort(c.Filter.Filter(tasks, criteria))
}

// Query loads all tasks and returns the visible subset
func (c *ServiceContainer) Query(ctx context.Context, criteria FilterCriteria) ([]domain.Task, error) {
	tasks, err := c.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return c.Visible(tasks, criteria), nil
}

// Snapshot loads the tasks and categories a summary or title is computed from
func (c *ServiceContainer) Snapshot(ctx context.Context) ([]domain.Task, []domain.Category, error) {
	tasks, err := c.Tasks.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	categories, err := c.Categories.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return tasks, categories, nil
}
