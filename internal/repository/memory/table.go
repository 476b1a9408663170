package memory

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
)

// Options configures simulated latency and logging for the memory stores
type Options struct {
	LatencyMin time.Duration
	LatencyMax time.Duration
	Logger     *slog.Logger
}

// table is an ordered, mutex-guarded collection keyed by a positive int64 id.
// Rows are cloned on the way in and out so callers never share storage.
type table[T any] struct {
	mu       sync.RWMutex
	rows     []T
	resource string
	idOf     func(T) int64
	withID   func(T, int64) T
	clone    func(T) T
	opts     Options
	log      *slog.Logger
}

func newTable[T any](resource string, idOf func(T) int64, withID func(T, int64) T, clone func(T) T, opts Options) *table[T] {
	return &table[T]{
		resource: resource,
		idOf:     idOf,
		withID:   withID,
		clone:    clone,
		opts:     opts,
		log:      logging.OrDiscard(opts.Logger).With("store", "memory", "resource", resource),
	}
}

// delay simulates a slow backend. It returns early with a timeout error if ctx ends.
func (t *table[T]) delay(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext(t.resource+" "+op, err)
	}

	d := t.opts.LatencyMin
	if spread := t.opts.LatencyMax - t.opts.LatencyMin; spread > 0 {
		d += rand.N(spread)
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.FromContext(t.resource+" "+op, ctx.Err())
	}
}

func (t *table[T]) indexOf(id int64) int {
	for i, row := range t.rows {
		if t.idOf(row) == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) nextID() int64 {
	var max int64
	for _, row := range t.rows {
		if id := t.idOf(row); id > max {
			max = id
		}
	}
	return max + 1
}

func (t *table[T]) all(ctx context.Context) ([]T, error) {
	if err := t.delay(ctx, "list"); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, t.clone(row))
	}
	return out, nil
}

func (t *table[T]) get(ctx context.Context, id int64) (*T, error) {
	if err := t.delay(ctx, "get"); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, errors.NewNotFoundError(t.resource, id)
	}
	row := t.clone(t.rows[i])
	return &row, nil
}

func (t *table[T]) insert(ctx context.Context, row T) (*T, error) {
	if err := t.delay(ctx, "create"); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	stored := t.withID(t.clone(row), t.nextID())
	t.rows = append(t.rows, stored)
	t.log.Debug("created", "id", t.idOf(stored))

	out := t.clone(stored)
	return &out, nil
}

// replace swaps the row for id with update(existing). The id is preserved.
func (t *table[T]) replace(ctx context.Context, id int64, update func(existing T) T) (*T, error) {
	if err := t.delay(ctx, "update"); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, errors.NewNotFoundError(t.resource, id)
	}
	stored := t.withID(t.clone(update(t.rows[i])), id)
	t.rows[i] = stored
	t.log.Debug("updated", "id", id)

	out := t.clone(stored)
	return &out, nil
}

func (t *table[T]) remove(ctx context.Context, id int64) (bool, error) {
	if err := t.delay(ctx, "delete"); err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false, errors.NewNotFoundError(t.resource, id)
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	t.log.Debug("deleted", "id", id)
	return true, nil
}
