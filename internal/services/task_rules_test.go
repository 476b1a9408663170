package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
)

func TestNormalizeTaskInput(t *testing.T) {
	got := NormalizeTaskInput(domain.TaskInput{
		Title:       "  Buy milk  ",
		Description: " two litres ",
		DueDate:     " 2026-10-20 ",
		Priority:    " HIGH",
		CategoryID:  idPtr(0),
	})

	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "two litres", got.Description)
	assert.Equal(t, "2026-10-20", got.DueDate)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Nil(t, got.CategoryID)

	assert.Equal(t, domain.DefaultPriority, NormalizeTaskInput(domain.TaskInput{Title: "x"}).Priority)
}

func TestNormalizeTaskPatch(t *testing.T) {
	priority := domain.Priority("Low ")
	got := NormalizeTaskPatch(domain.TaskPatch{
		Title:    strPtr(" Renamed "),
		DueDate:  strPtr("  "),
		Priority: &priority,
	})

	require.NotNil(t, got.Title)
	assert.Equal(t, "Renamed", *got.Title)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "", *got.DueDate, "blank due date still clears")
	require.NotNil(t, got.Priority)
	assert.Equal(t, domain.PriorityLow, *got.Priority)
	assert.Nil(t, got.Description, "unset fields stay unset")
	assert.Equal(t, domain.Priority("Low "), priority, "caller's value is not modified")
}
