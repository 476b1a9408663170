package sqlstore

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

func TestFormatTimeForDB(t *testing.T) {
	loc := time.FixedZone("BST", 3600)
	ts := time.Date(2026, 6, 23, 11, 47, 24, 500, loc)

	formatted := FormatTimeForDB(ts)
	assert.Equal(t, "2026-06-23T10:47:24.0000005Z", formatted)

	parsed, err := ParseTimeFromDB(formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestFormatTimePtrForDB(t *testing.T) {
	assert.False(t, FormatTimePtrForDB(nil).Valid)

	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, sql.NullString{String: "2026-01-01T00:00:00Z", Valid: true}, FormatTimePtrForDB(&ts))
}

func TestFormatDateAndIDForDB(t *testing.T) {
	assert.False(t, FormatDateForDB(nil).Valid)
	d := domain.NewDate(2026, 3, 9)
	assert.Equal(t, "2026-03-09", FormatDateForDB(&d).String)

	assert.False(t, FormatIDForDB(nil).Valid)
	id := int64(7)
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, FormatIDForDB(&id))
}

func TestTaskRowRoundTrip(t *testing.T) {
	due := domain.NewDate(2026, 10, 20)
	cat := int64(3)
	done := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	task := domain.Task{
		ID:          5,
		Title:       "Round trip",
		DueDate:     &due,
		Priority:    domain.PriorityLow,
		CategoryID:  &cat,
		Completed:   true,
		CreatedAt:   time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
		CompletedAt: &done,
	}

	back, err := taskToRow(task).toDomain()
	require.NoError(t, err)
	assert.Equal(t, task, back)
}

func TestTaskRowRejectsCorruptTimestamps(t *testing.T) {
	_, err := taskRow{ID: 1, CreatedAt: "yesterday"}.toDomain()
	assert.Error(t, err)

	_, err = taskRow{ID: 1, CreatedAt: "2026-10-18T00:00:00Z", DueDate: sql.NullString{String: "soon", Valid: true}}.toDomain()
	assert.Error(t, err)
}

func TestHandleNoRowsError(t *testing.T) {
	err := HandleNoRowsError(sql.ErrNoRows, "task", 9)
	assert.True(t, errors.IsNotFound(err))

	err = HandleNoRowsError(sql.ErrConnDone, "task", 9)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
}
