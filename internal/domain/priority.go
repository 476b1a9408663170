package domain

import (
	"fmt"
	"strings"
)

// Priority ranks how urgent a task is. The zero value is "unset" and ranks below low.
type Priority string

const (
	PriorityUnset  Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is applied to tasks created without one.
const DefaultPriority = PriorityMedium

// ParsePriority parses a priority name case-insensitively. An empty string yields PriorityUnset.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return PriorityUnset, fmt.Errorf("unknown priority %q: expected low, medium or high", s)
	}
	return p, nil
}

// Rank orders priorities for sorting: high 3, medium 2, low 1, anything else 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether p is one of the known priorities or unset.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityUnset, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string {
	if p == PriorityUnset {
		return "none"
	}
	return string(p)
}
