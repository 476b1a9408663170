package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Is(t *testing.T) {
	err := NewNotFoundError("task", 3)

	if !errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}) {
		t.Errorf("errors.Is should match on type and code")
	}
	if errors.Is(err, &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_FAILED"}) {
		t.Errorf("errors.Is should not match a different type")
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation}
	err.WithContext("field", "title")

	value, ok := err.GetContext("field")
	if !ok || value != "title" {
		t.Errorf("GetContext(field) = %v, %v", value, ok)
	}
	if _, ok := err.GetContext("missing"); ok {
		t.Errorf("GetContext should report missing keys")
	}
}
