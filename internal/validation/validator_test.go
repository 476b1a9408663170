package validation

import (
	"strings"
	"testing"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tabs and newlines", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsWithinLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		max      int
		expected bool
	}{
		{"Empty string", "", 10, true},
		{"Exactly max", "hello", 5, true},
		{"Over max", "hello!", 5, false},
		{"Leading/trailing spaces ignored", "  hello  ", 5, true},
		{"Multibyte counted as characters", "ñandú", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsWithinLength(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("IsWithinLength(%q, %d) = %v, want %v", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidID(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		id       int64
		expected bool
	}{
		{0, false},
		{-1, false},
		{1, true},
		{42, true},
	}

	for _, tt := range tests {
		if got := validator.IsValidID(tt.id); got != tt.expected {
			t.Errorf("IsValidID(%d) = %v, want %v", tt.id, got, tt.expected)
		}
	}
}

func TestValidator_ConfiguredLimits(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 10
	cfg.Validation.DescriptionMaxLength = 20
	cfg.Validation.CategoryNameMaxLength = 5

	validator := NewValidatorWithConfig(cfg)
	if got := validator.TitleMaxLength(); got != 10 {
		t.Errorf("TitleMaxLength() = %d, want 10", got)
	}
	if got := validator.DescriptionMaxLength(); got != 20 {
		t.Errorf("DescriptionMaxLength() = %d, want 20", got)
	}
	if got := validator.CategoryNameMaxLength(); got != 5 {
		t.Errorf("CategoryNameMaxLength() = %d, want 5", got)
	}

	tv := NewTaskValidatorWithValidator(validator)
	if err := tv.ValidateTaskPatch(titlePatch(strings.Repeat("a", 11))); err == nil {
		t.Error("expected configured title limit to reject an 11 character title")
	}
}

func titlePatch(title string) domain.TaskPatch {
	return domain.TaskPatch{Title: &title}
}
