package services

import (
	"time"

	"task-manager/internal/domain"
)

var fixedNow = time.Date(2026, time.October, 18, 10, 30, 0, 0, time.Local)

func fixedClock() Clock {
	return ClockFunc(func() time.Time { return fixedNow })
}

func datePtr(year int, month time.Month, day int) *domain.Date {
	d := domain.NewDate(year, month, day)
	return &d
}

func idPtr(id int64) *int64 { return &id }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func titles(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}
