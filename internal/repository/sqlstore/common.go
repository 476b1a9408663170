package sqlstore

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"task-manager/internal/errors"
)

// maxInsertAttempts bounds retries when two writers pick the same next id
const maxInsertAttempts = 3

// HandleDatabaseError converts database errors to structured app errors.
// Context cancellation and deadlines become timeout errors.
func HandleDatabaseError(operation string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return errors.NewTimeoutError(operation, err)
	}
	return errors.NewDatabaseError(operation, err)
}

// HandleNoRowsError maps sql.ErrNoRows to a not-found error
func HandleNoRowsError(err error, entityType string, id int64) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFoundError(entityType, id)
	}
	return HandleDatabaseError("get "+entityType, err)
}

// ValidateRowsAffected checks that a write touched at least one row
func ValidateRowsAffected(result sql.Result, entityType string, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleDatabaseError("get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError(entityType, id)
	}
	return nil
}

// isDuplicateKey reports whether err is a primary key or unique violation on either backend
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if stderrors.As(err, &liteErr) {
		// extended codes carry the primary result code in the low byte
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// QuerySingle runs a query expected to return one row and scans it into T
func QuerySingle[T any](ctx context.Context, db sqlx.QueryerContext, query string, entityType string, id int64, args ...interface{}) (*T, error) {
	var row T
	if err := sqlx.GetContext(ctx, db, &row, query, args...); err != nil {
		return nil, HandleNoRowsError(err, entityType, id)
	}
	return &row, nil
}

// QueryMultiple runs a query and scans every row into T
func QueryMultiple[T any](ctx context.Context, db sqlx.QueryerContext, query string, entityType string, args ...interface{}) ([]T, error) {
	rows := make([]T, 0)
	if err := sqlx.SelectContext(ctx, db, &rows, query, args...); err != nil {
		return nil, HandleDatabaseError("list "+entityType, err)
	}
	return rows, nil
}

// insertWithNextID assigns max(id)+1 inside a transaction and runs the named
// insert. setID stores the chosen id on the row before the insert.
func insertWithNextID(ctx context.Context, db *sqlx.DB, table, insert string, entityType string, setID func(int64) interface{}) (int64, error) {
	nextIDQuery := fmt.Sprintf("SELECT COALESCE(MAX(id), 0) + 1 FROM %s", table)

	var lastErr error
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		id, err := func() (int64, error) {
			tx, err := db.BeginTxx(ctx, nil)
			if err != nil {
				return 0, err
			}
			defer tx.Rollback()

			var id int64
			if err := tx.GetContext(ctx, &id, nextIDQuery); err != nil {
				return 0, err
			}
			if _, err := tx.NamedExecContext(ctx, insert, setID(id)); err != nil {
				return 0, err
			}
			return id, tx.Commit()
		}()
		if err == nil {
			return id, nil
		}
		lastErr = err
		if !isDuplicateKey(err) {
			break
		}
	}
	return 0, HandleDatabaseError("create "+entityType, lastErr)
}
