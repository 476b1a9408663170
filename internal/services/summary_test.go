package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	"task-manager/internal/repository/memory"
)

func TestSummarizer_CountsMatchFilter(t *testing.T) {
	summarizer := NewSummarizer(fixedClock())
	engine := NewFilterEngine(fixedClock())
	tasks := sampleTasks()

	counts := summarizer.Counts(tasks)
	assert.Equal(t, FilterCounts{All: 6, Pending: 4, Completed: 2, Today: 2, Overdue: 1}, counts)

	for _, status := range StatusFilters {
		assert.Equal(t, len(engine.Filter(tasks, FilterCriteria{Status: status})), counts.Get(status), "status %s", status)
	}
}

func TestSummarizer_CategoryCounts(t *testing.T) {
	counts := NewSummarizer(fixedClock()).CategoryCounts(sampleTasks())
	assert.Equal(t, map[int64]int{1: 1, 2: 1}, counts)
}

func TestSummarizer_Progress(t *testing.T) {
	summarizer := NewSummarizer(fixedClock())

	assert.Equal(t, Progress{}, summarizer.Progress(nil))

	p := summarizer.Progress(sampleTasks())
	assert.Equal(t, 6, p.Total)
	assert.Equal(t, 2, p.Completed)
	assert.Equal(t, 4, p.Pending)
	assert.InDelta(t, 33.33, p.Percent, 0.01)
}

func TestTitle(t *testing.T) {
	categories := []domain.Category{{ID: 1, Name: "Work"}}

	tests := []struct {
		criteria FilterCriteria
		expected string
	}{
		{FilterCriteria{}, "All Tasks"},
		{FilterCriteria{Status: StatusPending}, "Pending Tasks"},
		{FilterCriteria{Status: StatusCompleted}, "Completed Tasks"},
		{FilterCriteria{Status: StatusToday}, "Today's Tasks"},
		{FilterCriteria{Status: StatusOverdue}, "Overdue Tasks"},
		{FilterCriteria{Status: StatusOverdue, CategoryID: idPtr(1)}, "Work Tasks"},
		{FilterCriteria{Status: StatusToday, CategoryID: idPtr(8)}, "Today's Tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Title(tt.criteria, categories))
		})
	}
}

func TestServiceContainer_Query(t *testing.T) {
	ctx := context.Background()
	container := NewServiceContainer(memory.NewTaskStore(memory.Options{}), memory.NewCategoryStore(memory.Options{}), fixedClock(), nil)

	inputs := []domain.TaskInput{
		{Title: "low", Priority: domain.PriorityLow},
		{Title: "high", Priority: domain.PriorityHigh},
		{Title: "medium"},
	}
	for _, in := range inputs {
		_, err := container.Tasks.Create(ctx, in)
		require.NoError(t, err)
	}

	visible, err := container.Query(ctx, FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "medium", "low"}, titles(visible))

	visible, err = container.Query(ctx, FilterCriteria{Query: "i"})
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "medium"}, titles(visible))

	tasks, cats, err := container.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	assert.Empty(t, cats)
}

func TestClock(t *testing.T) {
	assert.Equal(t, domain.NewDate(2026, 10, 18), Today(fixedClock()))
	assert.False(t, SystemClock{}.Now().IsZero())
}
