package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

func TestTaskStore_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(Options{})

	first, err := store.Create(ctx, domain.Task{Title: "one"})
	require.NoError(t, err)
	second, err := store.Create(ctx, domain.Task{Title: "two"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, domain.PriorityMedium, first.Priority)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestTaskStore_IDsAreMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(Options{})

	for _, title := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, domain.Task{Title: title})
		require.NoError(t, err)
	}
	_, err := store.Delete(ctx, 2)
	require.NoError(t, err)

	created, err := store.Create(ctx, domain.Task{Title: "d"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)

	_, err = store.Delete(ctx, 4)
	require.NoError(t, err)
	_, err = store.Delete(ctx, 3)
	require.NoError(t, err)

	created, err = store.Create(ctx, domain.Task{Title: "e"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID, "ids restart after the current maximum")
}

func TestTaskStore_KeepsGivenFields(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(Options{})
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	completed := created.Add(time.Hour)

	task, err := store.Create(ctx, domain.Task{
		Title:       "seeded",
		Priority:    domain.PriorityLow,
		Completed:   true,
		CreatedAt:   created,
		CompletedAt: &completed,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PriorityLow, task.Priority)
	assert.True(t, task.Completed)
	assert.Equal(t, created, task.CreatedAt)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, completed, *task.CompletedAt)
}

func TestTaskStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(Options{})
	cat := int64(5)

	created, err := store.Create(ctx, domain.Task{Title: "original", CategoryID: &cat})
	require.NoError(t, err)

	created.Title = "mutated"
	*created.CategoryID = 99
	cat = 42

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	all[0].Title = "mutated again"

	stored, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.Title)
	assert.Equal(t, int64(5), *stored.CategoryID)
}

func TestTaskStore_GetAllEmpty(t *testing.T) {
	all, err := NewTaskStore(Options{}).GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)
}

func TestTaskStore_UpdateKeepsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(Options{})

	created, err := store.Create(ctx, domain.Task{Title: "draft"})
	require.NoError(t, err)

	updated, err := store.Update(ctx, created.ID, domain.Task{ID: 77, Title: "final", Priority: domain.PriorityHigh})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
}

func TestTaskStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(Options{})
	_, err := store.Create(ctx, domain.Task{Title: "only"})
	require.NoError(t, err)

	_, err = store.GetByID(ctx, 9)
	assert.True(t, errors.IsNotFound(err))

	_, err = store.Update(ctx, 9, domain.Task{Title: "x"})
	assert.True(t, errors.IsNotFound(err))

	ok, err := store.Delete(ctx, 9)
	assert.False(t, ok)
	assert.True(t, errors.IsNotFound(err))

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "failed delete leaves the collection unchanged")
}

func TestTaskStore_DeleteReturnsTrue(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(Options{})
	created, err := store.Create(ctx, domain.Task{Title: "gone"})
	require.NoError(t, err)

	ok, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.GetByID(ctx, created.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestTaskStore_LatencyHonorsContext(t *testing.T) {
	store := NewTaskStore(Options{LatencyMin: time.Second, LatencyMax: 2 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := store.GetAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeTimeout))
}

func TestTaskStore_Latency(t *testing.T) {
	store := NewTaskStore(Options{LatencyMin: 5 * time.Millisecond, LatencyMax: 10 * time.Millisecond})

	start := time.Now()
	_, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestTaskStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	store := NewTaskStore(Options{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, domain.Task{Title: "parallel"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)

	seen := make(map[int64]bool)
	for _, task := range all {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
}

func TestCategoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewCategoryStore(Options{})

	work, err := store.Create(ctx, domain.Category{Name: "Work"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), work.ID)
	assert.Equal(t, domain.DefaultCategoryColor, work.Color)
	assert.Equal(t, domain.DefaultCategoryIcon, work.Icon)

	home, err := store.Create(ctx, domain.Category{Name: "Home", Color: "#10b981", Icon: "Home"})
	require.NoError(t, err)
	assert.Equal(t, "#10b981", home.Color)

	renamed, err := store.Update(ctx, work.ID, domain.Category{Name: "Office", Color: work.Color, Icon: work.Icon})
	require.NoError(t, err)
	assert.Equal(t, "Office", renamed.Name)
	assert.Equal(t, work.ID, renamed.ID)

	ok, err := store.Delete(ctx, home.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Office", all[0].Name)

	_, err = store.GetByID(ctx, home.ID)
	assert.True(t, errors.IsNotFound(err))
}
