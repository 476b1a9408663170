package validation

import (
	"task-manager/internal/domain"
)

// CategoryValidator provides validation for category operations
type CategoryValidator struct {
	validator *Validator
}

// NewCategoryValidator creates a new category validator with default limits
func NewCategoryValidator() *CategoryValidator {
	return &CategoryValidator{validator: NewValidator()}
}

// NewCategoryValidatorWithValidator creates a category validator sharing the given limits
func NewCategoryValidatorWithValidator(v *Validator) *CategoryValidator {
	return &CategoryValidator{validator: v}
}

func (cv *CategoryValidator) checkName(ve *ValidationError, name string) {
	if !cv.validator.IsNonEmptyString(name) {
		ve.AddRequiredError("name")
		return
	}
	if max := cv.validator.CategoryNameMaxLength(); !cv.validator.IsWithinLength(name, max) {
		ve.AddInvalidLengthError("name", name, max)
	}
}

// ValidateCategoryInput validates a category about to be created
func (cv *CategoryValidator) ValidateCategoryInput(input domain.CategoryInput) error {
	ve := NewValidationError()
	cv.checkName(ve, input.Name)
	return ve.OrNil()
}

// ValidateCategoryPatch validates the fields present in a partial update
func (cv *CategoryValidator) ValidateCategoryPatch(patch domain.CategoryPatch) error {
	ve := NewValidationError()
	if patch.Name != nil {
		cv.checkName(ve, *patch.Name)
	}
	return ve.OrNil()
}

// ValidateCategoryID validates a category ID
func (cv *CategoryValidator) ValidateCategoryID(id int64) error {
	if !cv.validator.IsValidID(id) {
		ve := NewValidationError()
		ve.AddInvalidValueError("id", id, "must be a positive integer")
		return ve
	}
	return nil
}
