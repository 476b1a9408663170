package services

import (
	"strings"
	"time"

	"task-manager/internal/domain"
)

// normalizePriority lowercases a priority and maps empty to the default.
func normalizePriority(p domain.Priority) domain.Priority {
	p = domain.Priority(strings.ToLower(strings.TrimSpace(string(p))))
	if p == domain.PriorityUnset {
		return domain.DefaultPriority
	}
	return p
}

// normalizeCategory maps a zero category id to uncategorized.
func normalizeCategory(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

// parseDueDate maps an empty string to no due date. The string must already be validated.
func parseDueDate(s string) *domain.Date {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// NormalizeTaskInput trims text fields and canonicalizes the priority before validation
func NormalizeTaskInput(input domain.TaskInput) domain.TaskInput {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.DueDate = strings.TrimSpace(input.DueDate)
	input.Priority = normalizePriority(input.Priority)
	input.CategoryID = normalizeCategory(input.CategoryID)
	return input
}

// NormalizeTaskPatch applies the same canonicalization to the fields a patch sets
func NormalizeTaskPatch(patch domain.TaskPatch) domain.TaskPatch {
	if patch.Title != nil {
		v := strings.TrimSpace(*patch.Title)
		patch.Title = &v
	}
	if patch.Description != nil {
		v := strings.TrimSpace(*patch.Description)
		patch.Description = &v
	}
	if patch.DueDate != nil {
		v := strings.TrimSpace(*patch.DueDate)
		patch.DueDate = &v
	}
	if patch.Priority != nil {
		v := normalizePriority(*patch.Priority)
		patch.Priority = &v
	}
	return patch
}

// BuildTask turns validated, normalized input into a new incomplete task stamped at now.
func BuildTask(input domain.TaskInput, now time.Time) domain.Task {
	return domain.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     parseDueDate(input.DueDate),
		Priority:    input.Priority,
		CategoryID:  input.CategoryID,
		Completed:   false,
		CreatedAt:   now,
		CompletedAt: nil,
	}
}

// MergeTask applies a validated patch to a copy of existing. CompletedAt is
// stamped with now when the task becomes complete, cleared when it becomes
// incomplete, and left alone otherwise.
func MergeTask(existing domain.Task, patch domain.TaskPatch, now time.Time) domain.Task {
	merged := existing.Clone()

	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.DueDate != nil {
		merged.DueDate = parseDueDate(*patch.DueDate)
	}
	if patch.Priority != nil {
		merged.Priority = *patch.Priority
	}
	if patch.CategoryID != nil {
		merged.CategoryID = normalizeCategory(patch.CategoryID)
	}
	if patch.Completed != nil {
		switch {
		case *patch.Completed && !existing.Completed:
			stamp := now
			merged.CompletedAt = &stamp
		case !*patch.Completed && existing.Completed:
			merged.CompletedAt = nil
		}
		merged.Completed = *patch.Completed
	}
	return merged
}
