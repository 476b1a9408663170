package services

import (
	"context"
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// CategoryManager handles category CRUD. Deleting a category leaves tasks that
// reference it untouched; they display as uncategorized.
type CategoryManager struct {
	store     CategoryStore
	validator *validation.CategoryValidator
}

// NewCategoryManager creates a CategoryManager. A nil validator uses default limits.
func NewCategoryManager(store CategoryStore, v *validation.Validator) *CategoryManager {
	if v == nil {
		v = validation.NewValidator()
	}
	return &CategoryManager{
		store:     store,
		validator: validation.NewCategoryValidatorWithValidator(v),
	}
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// Create validates and stores a new category, filling in the default color and icon
func (m *CategoryManager) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := m.validator.ValidateCategoryInput(input); err != nil {
		return nil, errors.NewValidationError("invalid category", err)
	}

	return m.store.Create(ctx, domain.Category{
		Name:  input.Name,
		Color: orDefault(input.Color, domain.DefaultCategoryColor),
		Icon:  orDefault(input.Icon, domain.DefaultCategoryIcon),
	})
}

// Get retrieves a category by its ID
func (m *CategoryManager) Get(ctx context.Context, id int64) (*domain.Category, error) {
	if err := m.validator.ValidateCategoryID(id); err != nil {
		return nil, errors.NewValidationError("invalid category ID", err)
	}
	return m.store.GetByID(ctx, id)
}

// List returns all categories
func (m *CategoryManager) List(ctx context.Context) ([]domain.Category, error) {
	return m.store.GetAll(ctx)
}

// Update applies a partial update to a stored category
func (m *CategoryManager) Update(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error) {
	existing, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if err := m.validator.ValidateCategoryPatch(patch); err != nil {
		return nil, errors.NewValidationError("invalid category update", err)
	}

	updated := *existing
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Color != nil {
		updated.Color = orDefault(*patch.Color, domain.DefaultCategoryColor)
	}
	if patch.Icon != nil {
		updated.Icon = orDefault(*patch.Icon, domain.DefaultCategoryIcon)
	}
	return m.store.Update(ctx, id, updated)
}

// Delete removes a category without touching its tasks
func (m *CategoryManager) Delete(ctx context.Context, id int64) error {
	if err := m.validator.ValidateCategoryID(id); err != nil {
		return errors.NewValidationError("invalid category ID", err)
	}
	_, err := m.store.Delete(ctx, id)
	return err
}
