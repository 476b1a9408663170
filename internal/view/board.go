// Package view keeps the local task snapshot a presentation layer renders from
// and applies mutations to it optimistically.
package view

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-manager/internal/domain"
	"task-manager/internal/logging"
	"task-manager/internal/services"
)

// MutationKind names the operation behind a pending mutation
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationToggle MutationKind = "toggle"
	MutationDelete MutationKind = "delete"
)

// Mutation is a change applied locally and not yet confirmed by the store
type Mutation struct {
	ID        string       `json:"id"`
	Kind      MutationKind `json:"kind"`
	TaskID    int64        `json:"taskId"`
	StartedAt time.Time    `json:"startedAt"`
}

// Board holds the task snapshot. Each mutation is applied to the snapshot
// first, then sent to the lifecycle manager; the confirmed record replaces the
// optimistic one, or the prior state is restored on failure.
type Board struct {
	svc *services.ServiceContainer
	log *slog.Logger

	mu      sync.Mutex
	tasks   []domain.Task
	pending map[string]Mutation
	tempID  int64
}

// NewBoard creates an empty board. Call Load to fill it from the store.
func NewBoard(svc *services.ServiceContainer, log *slog.Logger) *Board {
	return &Board{
		svc:     svc,
		log:     logging.OrDiscard(log),
		pending: make(map[string]Mutation),
	}
}

// Load replaces the snapshot with the store's current tasks
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.svc.Tasks.List(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = tasks
	return nil
}

// Tasks returns a copy of the snapshot in store order
func (b *Board) Tasks() []domain.Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		out = append(out, t.Clone())
	}
	return out
}

// Visible returns the filtered, sorted snapshot
func (b *Board) Visible(criteria services.FilterCriteria) []domain.Task {
	return b.svc.Visible(b.Tasks(), criteria)
}

// Summary computes sidebar counts and progress over the snapshot
func (b *Board) Summary() services.Summary {
	return b.svc.Summary.Summarize(b.Tasks())
}

// Pending lists in-flight mutations, oldest first
func (b *Board) Pending() []Mutation {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Mutation, 0, len(b.pending))
	for _, m := range b.pending {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// begin records a pending mutation. Callers hold b.mu.
func (b *Board) begin(kind MutationKind, taskID int64) Mutation {
	m := Mutation{
		ID:        uuid.NewString(),
		Kind:      kind,
		TaskID:    taskID,
		StartedAt: b.svc.Clock.Now(),
	}
	b.pending[m.ID] = m
	b.log.Debug("mutation started", "mutation", m.ID, "kind", kind, "task", taskID)
	return m
}

func (b *Board) finish(m Mutation, err error) {
	delete(b.pending, m.ID)
	if err != nil {
		b.log.Debug("mutation rolled back", "mutation", m.ID, "kind", m.Kind, "error", err)
		return
	}
	b.log.Debug("mutation confirmed", "mutation", m.ID, "kind", m.Kind)
}

func (b *Board) indexOf(id int64) int {
	for i, t := range b.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// put replaces the record with id, or appends task when id is gone
func (b *Board) put(id int64, task domain.Task) {
	if i := b.indexOf(id); i >= 0 {
		b.tasks[i] = task
		return
	}
	b.tasks = append(b.tasks, task)
}

func (b *Board) drop(id int64) {
	if i := b.indexOf(id); i >= 0 {
		b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
	}
}

// Create adds a placeholder with a temporary negative id, then stores the task.
func (b *Board) Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	input = services.NormalizeTaskInput(input)

	b.mu.Lock()
	b.tempID--
	placeholder := services.BuildTask(input, b.svc.Clock.Now())
	placeholder.ID = b.tempID
	b.tasks = append(b.tasks, placeholder)
	m := b.begin(MutationCreate, placeholder.ID)
	b.mu.Unlock()

	created, err := b.svc.Tasks.Create(ctx, input)

	b.mu.Lock()
	defer b.mu.Unlock()
	defer b.finish(m, err)
	if err != nil {
		b.drop(placeholder.ID)
		return nil, err
	}
	b.put(placeholder.ID, created.Clone())
	return created, nil
}

// Update applies patch locally, then through the lifecycle manager
func (b *Board) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	patch = services.NormalizeTaskPatch(patch)
	return b.mutate(ctx, MutationUpdate, id, func(local domain.Task, now time.Time) domain.Task {
		return services.MergeTask(local, patch, now)
	}, func() (*domain.Task, error) {
		return b.svc.Tasks.Update(ctx, id, patch)
	})
}

// ToggleComplete flips completion locally, then through the lifecycle manager
func (b *Board) ToggleComplete(ctx context.Context, id int64) (*domain.Task, error) {
	var current domain.Task
	return b.mutate(ctx, MutationToggle, id, func(local domain.Task, now time.Time) domain.Task {
		current = local
		completed := !local.Completed
		return services.MergeTask(local, domain.TaskPatch{Completed: &completed}, now)
	}, func() (*domain.Task, error) {
		if current.ID == 0 {
			// not in the snapshot; let the manager resolve it
			stored, err := b.svc.Tasks.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			current = *stored
		}
		return b.svc.Tasks.ToggleComplete(ctx, current)
	})
}

// mutate runs the optimistic protocol for an existing task. Tasks missing from
// the snapshot skip the local step and go straight to the manager.
func (b *Board) mutate(ctx context.Context, kind MutationKind, id int64,
	apply func(local domain.Task, now time.Time) domain.Task,
	call func() (*domain.Task, error)) (*domain.Task, error) {

	b.mu.Lock()
	var prior *domain.Task
	if i := b.indexOf(id); i >= 0 {
		p := b.tasks[i].Clone()
		prior = &p
		b.tasks[i] = apply(p, b.svc.Clock.Now())
	}
	m := b.begin(kind, id)
	b.mu.Unlock()

	confirmed, err := call()

	b.mu.Lock()
	defer b.mu.Unlock()
	defer b.finish(m, err)
	if err != nil {
		if prior != nil {
			b.put(id, *prior)
		}
		return nil, err
	}
	b.put(id, confirmed.Clone())
	return confirmed, nil
}

// Delete removes the task locally, then from the store. On failure the task
// is restored at its former position.
func (b *Board) Delete(ctx context.Context, id int64) error {
	b.mu.Lock()
	index := b.indexOf(id)
	var prior domain.Task
	if index >= 0 {
		prior = b.tasks[index]
		b.tasks = append(b.tasks[:index], b.tasks[index+1:]...)
	}
	m := b.begin(MutationDelete, id)
	b.mu.Unlock()

	err := b.svc.Tasks.Delete(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	defer b.finish(m, err)
	if err != nil && index >= 0 && b.indexOf(id) < 0 {
		if index > len(b.tasks) {
			index = len(b.tasks)
		}
		b.tasks = append(b.tasks[:index], append([]domain.Task{prior}, b.tasks[index:]...)...)
	}
	return err
}
