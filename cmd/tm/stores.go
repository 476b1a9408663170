package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"task-manager/internal/cli"
	"task-manager/internal/config"
	"task-manager/internal/repository/memory"
	"task-manager/internal/repository/sqlstore"
	"task-manager/internal/seed"
	"task-manager/internal/services"
)

// StoreFactory creates the task and category stores for the configured backend
type StoreFactory struct {
	cfg   *config.Config
	log   *slog.Logger
	clock services.Clock
}

// NewStoreFactory creates a new store factory for the given configuration
func NewStoreFactory(cfg *config.Config, log *slog.Logger) *StoreFactory {
	return &StoreFactory{cfg: cfg, log: log, clock: services.SystemClock{}}
}

// openBackend satisfies cli.BackendFactory
func openBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*cli.Backend, error) {
	return NewStoreFactory(cfg, log).Create(ctx)
}

// Create opens the stores and loads the seed file into them when they are empty
func (sf *StoreFactory) Create(ctx context.Context) (*cli.Backend, error) {
	var (
		backend *cli.Backend
		err     error
	)
	switch sf.cfg.Store.Backend {
	case config.BackendMemory:
		backend = sf.createMemoryBackend()
	case config.BackendSQLite:
		backend, err = sf.createSQLiteBackend(ctx)
	case config.BackendPostgres:
		backend, err = sf.createPostgresBackend(ctx)
	default:
		err = fmt.Errorf("unknown store backend %q", sf.cfg.Store.Backend)
	}
	if err != nil {
		return nil, err
	}

	if err := sf.seed(ctx, backend); err != nil {
		if backend.Close != nil {
			_ = backend.Close()
		}
		return nil, err
	}
	return backend, nil
}

// createMemoryBackend keeps everything in process, with optional simulated latency
func (sf *StoreFactory) createMemoryBackend() *cli.Backend {
	opts := memory.Options{
		LatencyMin: sf.cfg.Store.LatencyMin,
		LatencyMax: sf.cfg.Store.LatencyMax,
		Logger:     sf.log,
	}
	return &cli.Backend{
		Tasks:      memory.NewTaskStore(opts),
		Categories: memory.NewCategoryStore(opts),
		Clock:      sf.clock,
		Logger:     sf.log,
	}
}

// createSQLiteBackend uses the database file under the configured directory
func (sf *StoreFactory) createSQLiteBackend(ctx context.Context) (*cli.Backend, error) {
	path := sf.cfg.GetDatabasePath()
	if path != ":memory:" {
		if err := os.MkdirAll(sf.cfg.Database.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlstore.OpenSQLite(ctx, path, sf.sqlOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sqlite database: %w", err)
	}
	return sf.sqlBackend(db), nil
}

// createPostgresBackend connects through pgx using the configured DSN
func (sf *StoreFactory) createPostgresBackend(ctx context.Context) (*cli.Backend, error) {
	db, err := sqlstore.OpenPostgres(ctx, sf.cfg.Database.DSN, sf.sqlOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres database: %w", err)
	}
	return sf.sqlBackend(db), nil
}

func (sf *StoreFactory) sqlOptions() sqlstore.Options {
	return sqlstore.Options{
		QueryTimeout: sf.cfg.GetQueryTimeout(),
		WriteTimeout: sf.cfg.GetWriteTimeout(),
		Logger:       sf.log,
	}
}

func (sf *StoreFactory) sqlBackend(db *sqlstore.DB) *cli.Backend {
	return &cli.Backend{
		Tasks:      db.Tasks(),
		Categories: db.Categories(),
		Clock:      sf.clock,
		Logger:     sf.log,
		Close:      db.Close,
	}
}

func (sf *StoreFactory) seed(ctx context.Context, backend *cli.Backend) error {
	path := sf.cfg.Store.SeedFile
	if path == "" {
		return nil
	}
	f, err := seed.ReadFile(path)
	if err != nil {
		return err
	}
	res, err := seed.Load(ctx, f, backend.Tasks, backend.Categories, sf.clock.Now())
	if err != nil {
		return fmt.Errorf("load seed file %s: %w", path, err)
	}
	if sf.log != nil {
		sf.log.Debug("seed file processed",
			"path", path,
			"skipped", res.Skipped,
			"categories", res.Categories,
			"tasks", res.Tasks,
		)
	}
	return nil
}
