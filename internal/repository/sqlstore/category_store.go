package sqlstore

import (
	"context"

	"task-manager/internal/domain"
)

// CategoryStore persists categories in the categories table
type CategoryStore struct {
	db *DB
}

func (s *CategoryStore) GetAll(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := s.db.readContext(ctx)
	defer cancel()

	rows, err := QueryMultiple[categoryRow](ctx, s.db.conn, `SELECT id, name, color, icon FROM categories ORDER BY id ASC`, "categories")
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, r.toDomain())
	}
	return categories, nil
}

func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	ctx, cancel := s.db.readContext(ctx)
	defer cancel()

	query := s.db.conn.Rebind(`SELECT id, name, color, icon FROM categories WHERE id = ?`)
	row, err := QuerySingle[categoryRow](ctx, s.db.conn, query, "category", id, id)
	if err != nil {
		return nil, err
	}
	c := row.toDomain()
	return &c, nil
}

// Create inserts category under max(id)+1, filling in a missing color or icon
func (s *CategoryStore) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if category.Color == "" {
		category.Color = domain.DefaultCategoryColor
	}
	if category.Icon == "" {
		category.Icon = domain.DefaultCategoryIcon
	}

	wctx, cancel := s.db.writeContext(ctx)
	defer cancel()

	insert := `INSERT INTO categories (id, name, color, icon) VALUES (:id, :name, :color, :icon)`
	id, err := insertWithNextID(wctx, s.db.conn, "categories", insert, "category", func(id int64) interface{} {
		category.ID = id
		return categoryToRow(category)
	})
	if err != nil {
		return nil, err
	}
	s.db.log.Debug("category created", "id", id)

	return s.GetByID(ctx, id)
}

func (s *CategoryStore) Update(ctx context.Context, id int64, category domain.Category) (*domain.Category, error) {
	wctx, cancel := s.db.writeContext(ctx)
	defer cancel()

	category.ID = id
	update := `UPDATE categories SET name = :name, color = :color, icon = :icon WHERE id = :id`
	result, err := s.db.conn.NamedExecContext(wctx, update, categoryToRow(category))
	if err != nil {
		return nil, HandleDatabaseError("update category", err)
	}
	if err := ValidateRowsAffected(result, "category", id); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes a category. Tasks that reference it keep their category_id.
func (s *CategoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := s.db.writeContext(ctx)
	defer cancel()

	result, err := s.db.conn.ExecContext(ctx, s.db.conn.Rebind(`DELETE FROM categories WHERE id = ?`), id)
	if err != nil {
		return false, HandleDatabaseError("delete category", err)
	}
	if err := ValidateRowsAffected(result, "category", id); err != nil {
		return false, err
	}
	return true, nil
}
