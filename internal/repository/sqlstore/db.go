package sqlstore

import (
	"context"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/sqlstore/migrations"
)

// Driver names registered by the imported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Options tunes timeouts and logging for a DB
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	Logger       *slog.Logger
}

// DB is a migrated database connection shared by the task and category stores
type DB struct {
	conn   *sqlx.DB
	driver string
	opts   Options
	log    *slog.Logger
}

// Open connects to the database, applies pending migrations and returns the handle.
func Open(ctx context.Context, driver, dsn string, opts Options) (*DB, error) {
	log := logging.OrDiscard(opts.Logger).With("store", driver)

	conn, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	if driver == DriverSQLite {
		// one writer at a time; also keeps ":memory:" databases on a single connection
		conn.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(ctx, conn); err != nil {
		conn.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}
	log.Debug("database ready", "driver", driver)

	return &DB{conn: conn, driver: driver, opts: opts, log: log}, nil
}

// OpenSQLite opens an embedded SQLite database at path (":memory:" allowed)
func OpenSQLite(ctx context.Context, path string, opts Options) (*DB, error) {
	return Open(ctx, DriverSQLite, path, opts)
}

// OpenPostgres opens a Postgres database through pgx
func OpenPostgres(ctx context.Context, dsn string, opts Options) (*DB, error) {
	return Open(ctx, DriverPostgres, dsn, opts)
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping checks the connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return HandleDatabaseError("ping", err)
	}
	return nil
}

// Tasks returns a task store backed by db
func (db *DB) Tasks() *TaskStore {
	return &TaskStore{db: db, now: time.Now}
}

// Categories returns a category store backed by db
func (db *DB) Categories() *CategoryStore {
	return &CategoryStore{db: db}
}

func (db *DB) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, db.opts.QueryTimeout)
}

func (db *DB) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, db.opts.WriteTimeout)
}
