package services

import (
	"context"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// LifecycleManager creates, updates, completes and deletes tasks through a TaskStore.
// Every operation either returns the store-confirmed record or an error and
// leaves the store unchanged.
type LifecycleManager struct {
	store         TaskStore
	clock         Clock
	taskValidator *validation.TaskValidator
}

// NewLifecycleManager creates a LifecycleManager. A nil validator uses default limits.
func NewLifecycleManager(store TaskStore, clock Clock, v *validation.Validator) *LifecycleManager {
	if clock == nil {
		clock = SystemClock{}
	}
	if v == nil {
		v = validation.NewValidator()
	}
	return &LifecycleManager{
		store:         store,
		clock:         clock,
		taskValidator: validation.NewTaskValidatorWithValidator(v),
	}
}

func (m *LifecycleManager) validateID(id int64) error {
	if err := m.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}
	return nil
}

// Create validates input and stores a new incomplete task
func (m *LifecycleManager) Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	input = NormalizeTaskInput(input)
	if err := m.taskValidator.ValidateTaskInput(input); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	task := BuildTask(input, m.clock.Now())
	return m.store.Create(ctx, task)
}

// Get retrieves a task by its ID
func (m *LifecycleManager) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if err := m.validateID(id); err != nil {
		return nil, err
	}
	return m.store.GetByID(ctx, id)
}

// List returns every stored task in store order
func (m *LifecycleManager) List(ctx context.Context) ([]domain.Task, error) {
	return m.store.GetAll(ctx)
}

// Update merges patch into the stored task. Unknown ids fail with NotFound
// before the patch is validated.
func (m *LifecycleManager) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if err := m.validateID(id); err != nil {
		return nil, err
	}

	existing, err := m.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch = NormalizeTaskPatch(patch)
	if err := m.taskValidator.ValidateTaskPatch(patch); err != nil {
		return nil, errors.NewValidationError("invalid task update", err)
	}

	merged := MergeTask(*existing, patch, m.clock.Now())
	return m.store.Update(ctx, id, merged)
}

// ToggleComplete flips the completion state of task
func (m *LifecycleManager) ToggleComplete(ctx context.Context, task domain.Task) (*domain.Task, error) {
	completed := !task.Completed
	return m.Update(ctx, task.ID, domain.TaskPatch{Completed: &completed})
}

// Delete removes a task. A nil error is the confirmation. Deleting never touches categories.
func (m *LifecycleManager) Delete(ctx context.Context, id int64) error {
	if err := m.validateID(id); err != nil {
		return err
	}
	if _, err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
