package validation

import (
	"task-manager/internal/domain"
)

// TaskValidator provides validation for task operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{validator: NewValidator()}
}

// NewTaskValidatorWithValidator creates a task validator sharing the given limits
func NewTaskValidatorWithValidator(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

func (tv *TaskValidator) checkTitle(ve *ValidationError, title string) {
	if !tv.validator.IsNonEmptyString(title) {
		ve.AddRequiredError("title")
		return
	}
	if max := tv.validator.TitleMaxLength(); !tv.validator.IsWithinLength(title, max) {
		ve.AddInvalidLengthError("title", title, max)
	}
}

func (tv *TaskValidator) checkDescription(ve *ValidationError, description string) {
	if max := tv.validator.DescriptionMaxLength(); !tv.validator.IsWithinLength(description, max) {
		ve.AddInvalidLengthError("description", description, max)
	}
}

func (tv *TaskValidator) checkDueDate(ve *ValidationError, dueDate string) {
	if !tv.validator.IsNonEmptyString(dueDate) {
		return // empty means no due date
	}
	if _, err := domain.ParseDate(dueDate); err != nil {
		ve.AddInvalidFormatError("dueDate", dueDate, domain.DateLayout)
	}
}

func (tv *TaskValidator) checkPriority(ve *ValidationError, priority domain.Priority) {
	if !priority.IsValid() {
		ve.AddInvalidValueError("priority", priority, "must be low, medium or high")
	}
}

func (tv *TaskValidator) checkCategoryID(ve *ValidationError, categoryID *int64) {
	if categoryID != nil && *categoryID < 0 {
		ve.AddInvalidValueError("categoryId", *categoryID, "must be a positive integer")
	}
}

// ValidateTaskInput validates every field of a task about to be created
func (tv *TaskValidator) ValidateTaskInput(input domain.TaskInput) error {
	ve := NewValidationError()
	tv.checkTitle(ve, input.Title)
	tv.checkDescription(ve, input.Description)
	tv.checkDueDate(ve, input.DueDate)
	tv.checkPriority(ve, input.Priority)
	tv.checkCategoryID(ve, input.CategoryID)
	return ve.OrNil()
}

// ValidateTaskPatch validates only the fields present in a partial update
func (tv *TaskValidator) ValidateTaskPatch(patch domain.TaskPatch) error {
	ve := NewValidationError()
	if patch.Title != nil {
		tv.checkTitle(ve, *patch.Title)
	}
	if patch.Description != nil {
		tv.checkDescription(ve, *patch.Description)
	}
	if patch.DueDate != nil {
		tv.checkDueDate(ve, *patch.DueDate)
	}
	if patch.Priority != nil {
		tv.checkPriority(ve, *patch.Priority)
	}
	tv.checkCategoryID(ve, patch.CategoryID)
	return ve.OrNil()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		ve := NewValidationError()
		ve.AddInvalidValueError("id", id, "must be a positive integer")
		return ve
	}
	return nil
}
