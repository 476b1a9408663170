package sqlstore

import (
	"database/sql"
	"time"

	"task-manager/internal/domain"
)

// FormatTimeForDB formats a time as RFC3339 in UTC for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatTimePtrForDB formats an optional time, mapping nil to NULL
func FormatTimePtrForDB(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: FormatTimeForDB(*t), Valid: true}
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// FormatDateForDB formats an optional calendar date as YYYY-MM-DD
func FormatDateForDB(d *domain.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

// FormatIDForDB maps an optional foreign key to a nullable integer
func FormatIDForDB(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
