package domain

import "time"

// Task represents a to-do item in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *Date      `json:"dueDate"`
	Priority    Priority   `json:"priority"`
	CategoryID  *int64     `json:"categoryId"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// Clone returns a deep copy of the task, so callers can hand it out without sharing pointers.
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	if t.CategoryID != nil {
		id := *t.CategoryID
		c.CategoryID = &id
	}
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return c
}

// HasDueDate reports whether the task has a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// IsDueOn reports whether the task is due on the given calendar date.
func (t Task) IsDueOn(day Date) bool {
	return t.DueDate != nil && t.DueDate.Equal(day)
}

// IsOverdue reports whether the task is incomplete and due strictly before today.
func (t Task) IsOverdue(today Date) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(today)
}

// InCategory reports whether the task is assigned to the given category.
func (t Task) InCategory(categoryID int64) bool {
	return t.CategoryID != nil && *t.CategoryID == categoryID
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// TaskInput carries the fields a caller supplies when creating a task.
// DueDate is an ISO date string; empty means no due date. A zero CategoryID means uncategorized.
type TaskInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	CategoryID  *int64   `json:"categoryId"`
}

// TaskPatch is a partial update. Nil fields are left untouched.
// A DueDate of "" clears the due date and a CategoryID of 0 clears the category.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	CategoryID  *int64    `json:"categoryId,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.CategoryID == nil && p.Completed == nil
}
