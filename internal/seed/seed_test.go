package seed

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	"task-manager/internal/repository/memory"
)

var seedNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

const sampleYAML = `
categories:
  - id: 10
    name: Work
    color: "#ef4444"
    icon: Briefcase
  - id: 20
    name: Home
tasks:
  - title: Write report
    due_date: 2026-10-20
    priority: high
    category_id: 10
  - title: Pay rent
    priority: LOW
    category_id: 20
    completed: true
    created_at: 2026-10-01T08:00:00Z
    completed_at: 2026-10-02T08:00:00Z
  - title: Orphan
    category_id: 99
  - title: Done without stamp
    completed: true
`

func TestRead(t *testing.T) {
	f, err := Read(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, f.Categories, 2)
	require.Len(t, f.Tasks, 4)
	assert.Equal(t, "Briefcase", f.Categories[0].Icon)
	assert.Equal(t, "2026-10-20", f.Tasks[0].DueDate)

	_, err = Read(strings.NewReader("tasks:\n  - titel: typo\n"))
	assert.Error(t, err, "unknown keys are rejected")

	empty, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Tasks)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	tasks := memory.NewTaskStore(memory.Options{})
	categories := memory.NewCategoryStore(memory.Options{})

	f, err := Read(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	res, err := Load(ctx, f, tasks, categories, seedNow)
	require.NoError(t, err)
	assert.Equal(t, Result{Categories: 2, Tasks: 4}, res)

	cats, err := categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{
		{ID: 1, Name: "Work", Color: "#ef4444", Icon: "Briefcase"},
		{ID: 2, Name: "Home", Color: domain.DefaultCategoryColor, Icon: domain.DefaultCategoryIcon},
	}, cats)

	all, err := tasks.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	report := all[0]
	assert.Equal(t, domain.PriorityHigh, report.Priority)
	assert.Equal(t, int64(1), *report.CategoryID, "category ids are remapped")
	assert.Equal(t, domain.NewDate(2026, 10, 20), *report.DueDate)
	assert.Equal(t, seedNow, report.CreatedAt)
	assert.Nil(t, report.CompletedAt)

	rent := all[1]
	assert.Equal(t, domain.PriorityLow, rent.Priority)
	assert.Equal(t, int64(2), *rent.CategoryID)
	assert.True(t, rent.Completed)
	assert.Equal(t, time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC), *rent.CompletedAt)

	assert.Equal(t, int64(99), *all[2].CategoryID, "dangling reference kept")
	assert.Equal(t, domain.PriorityMedium, all[2].Priority)

	require.NotNil(t, all[3].CompletedAt)
	assert.Equal(t, seedNow, *all[3].CompletedAt)
}

func TestLoad_SkipsNonEmptyStores(t *testing.T) {
	ctx := context.Background()
	tasks := memory.NewTaskStore(memory.Options{})
	categories := memory.NewCategoryStore(memory.Options{})
	_, err := tasks.Create(ctx, domain.Task{Title: "existing"})
	require.NoError(t, err)

	f, err := Read(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	res, err := Load(ctx, f, tasks, categories, seedNow)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	cats, err := categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestLoad_InvalidEntryStoresNothing(t *testing.T) {
	ctx := context.Background()
	tasks := memory.NewTaskStore(memory.Options{})
	categories := memory.NewCategoryStore(memory.Options{})

	f := &File{
		Categories: []Category{{ID: 1, Name: "Work"}},
		Tasks:      []Task{{Title: "ok"}, {Title: "bad", Priority: "urgent"}},
	}
	_, err := Load(ctx, f, tasks, categories, seedNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "urgent")

	all, err := tasks.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	cats, err := categories.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	tasks := memory.NewTaskStore(memory.Options{})
	categories := memory.NewCategoryStore(memory.Options{})

	f, err := Read(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	_, err = Load(ctx, f, tasks, categories, seedNow)
	require.NoError(t, err)

	exported, err := Export(ctx, tasks, categories)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, exported))
	assert.Contains(t, buf.String(), "title: Write report")
	assert.Contains(t, buf.String(), "2026-10-20")

	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	reread, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, exported, reread)

	freshTasks := memory.NewTaskStore(memory.Options{})
	freshCategories := memory.NewCategoryStore(memory.Options{})
	_, err = Load(ctx, reread, freshTasks, freshCategories, seedNow.Add(time.Hour))
	require.NoError(t, err)

	original, err := tasks.GetAll(ctx)
	require.NoError(t, err)
	restored, err := freshTasks.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
