package memory

import (
	"context"

	"task-manager/internal/domain"
)

// CategoryStore keeps categories in memory. It is safe for concurrent use.
type CategoryStore struct {
	table *table[domain.Category]
}

// NewCategoryStore creates an empty in-memory category store
func NewCategoryStore(opts Options) *CategoryStore {
	return &CategoryStore{
		table: newTable("category",
			func(c domain.Category) int64 { return c.ID },
			func(c domain.Category, id int64) domain.Category { c.ID = id; return c },
			func(c domain.Category) domain.Category { return c },
			opts,
		),
	}
}

func (s *CategoryStore) GetAll(ctx context.Context) ([]domain.Category, error) {
	return s.table.all(ctx)
}

func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.table.get(ctx, id)
}

// Create stores category under the next free id, filling in a missing color or icon
func (s *CategoryStore) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if category.Color == "" {
		category.Color = domain.DefaultCategoryColor
	}
	if category.Icon == "" {
		category.Icon = domain.DefaultCategoryIcon
	}
	return s.table.insert(ctx, category)
}

func (s *CategoryStore) Update(ctx context.Context, id int64, category domain.Category) (*domain.Category, error) {
	return s.table.replace(ctx, id, func(domain.Category) domain.Category { return category })
}

func (s *CategoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}
