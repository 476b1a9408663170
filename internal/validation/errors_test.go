package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
		contains bool
	}{
		{"No errors", []FieldError{}, "validation error", false},
		{"Single error", []FieldError{{Field: "title", Message: "is required"}}, "validation error for field 'title': is required", false},
		{"Multiple errors", []FieldError{
			{Field: "title", Message: "is required"},
			{Field: "priority", Message: "is unknown"},
		}, "multiple validation errors", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.contains {
				if !strings.Contains(result, tt.expected) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expected)
				}
			} else if result != tt.expected {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestValidationError_OrNil(t *testing.T) {
	ve := NewValidationError()
	if err := ve.OrNil(); err != nil {
		t.Errorf("OrNil() on empty error = %v, expected nil", err)
	}

	ve.AddRequiredError("title")
	if err := ve.OrNil(); err == nil {
		t.Error("OrNil() expected error after AddRequiredError")
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	tests := []struct {
		name        string
		add         func(ve *ValidationError)
		field       string
		errorType   ValidationErrorType
		messagePart string
	}{
		{"Required", func(ve *ValidationError) { ve.AddRequiredError("title") }, "title", ErrorTypeRequired, "title is required"},
		{"Format", func(ve *ValidationError) { ve.AddInvalidFormatError("dueDate", "tomorrow", "2006-01-02") }, "dueDate", ErrorTypeInvalidFormat, "expected: 2006-01-02"},
		{"Length", func(ve *ValidationError) { ve.AddInvalidLengthError("name", "xxxxxx", 5) }, "name", ErrorTypeInvalidLength, "at most 5 characters"},
		{"Value", func(ve *ValidationError) { ve.AddInvalidValueError("priority", "urgent", "must be low, medium or high") }, "priority", ErrorTypeInvalidValue, "must be low, medium or high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			tt.add(ve)

			if len(ve.Errors) != 1 {
				t.Fatalf("Expected 1 error, got %d", len(ve.Errors))
			}
			if ve.Errors[0].Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, ve.Errors[0].Field)
			}
			if ve.Errors[0].Type != tt.errorType {
				t.Errorf("Expected error type %v, got %v", tt.errorType, ve.Errors[0].Type)
			}
			if !strings.Contains(ve.Errors[0].Message, tt.messagePart) {
				t.Errorf("Message %q does not contain %q", ve.Errors[0].Message, tt.messagePart)
			}
		})
	}
}

func TestValidationError_MergeAndFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")

	other := NewValidationError()
	other.AddInvalidLengthError("title", "x", 1)
	other.AddRequiredError("name")

	ve.Merge(other)
	ve.Merge(errors.New("not a validation error"))

	if len(ve.Errors) != 3 {
		t.Fatalf("Expected 3 errors after merge, got %d", len(ve.Errors))
	}
	if got := len(ve.GetFieldErrors("title")); got != 2 {
		t.Errorf("Expected 2 title errors, got %d", got)
	}
	if got := len(ve.GetFieldErrors("missing")); got != 0 {
		t.Errorf("Expected no errors for unknown field, got %d", got)
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if got := ve.GetUserFriendlyMessage(); got != "Input validation failed" {
		t.Errorf("empty message = %q", got)
	}

	ve.AddRequiredError("title")
	if got := ve.GetUserFriendlyMessage(); got != "title is required" {
		t.Errorf("single message = %q", got)
	}

	ve.AddRequiredError("name")
	got := ve.GetUserFriendlyMessage()
	if !strings.HasPrefix(got, "Multiple validation errors occurred:") {
		t.Errorf("multiple message = %q", got)
	}
	if !strings.Contains(got, "- name is required") {
		t.Errorf("multiple message missing name line: %q", got)
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(NewValidationError()) {
		t.Error("IsValidationError should be true for *ValidationError")
	}
	if IsValidationError(errors.New("plain")) {
		t.Error("IsValidationError should be false for plain errors")
	}
}
