package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/config"
)

const seedYAML = `categories:
  - id: 10
    name: Work
tasks:
  - title: Plan sprint
    priority: high
    category_id: 10
    due_date: "2026-10-20"
  - title: Stretch
`

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))
	return path
}

func TestStoreFactory_Memory(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Store.Backend = config.BackendMemory
	cfg.Store.SeedFile = writeSeed(t)

	backend, err := NewStoreFactory(cfg, nil).Create(context.Background())
	require.NoError(t, err)
	assert.Nil(t, backend.Close)

	tasks, err := backend.Tasks.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.NotNil(t, tasks[0].CategoryID)
	assert.Equal(t, int64(1), *tasks[0].CategoryID, "seed category ids are remapped")
}

func TestStoreFactory_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewConfig()
	cfg.Store.Backend = config.BackendSQLite
	cfg.Database.Dir = filepath.Join(t.TempDir(), "nested")
	cfg.Store.SeedFile = writeSeed(t)

	backend, err := NewStoreFactory(cfg, nil).Create(ctx)
	require.NoError(t, err)
	tasks, err := backend.Tasks.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	require.NoError(t, backend.Close())

	assert.FileExists(t, cfg.GetDatabasePath())

	// reopening finds data and leaves the seed alone
	backend, err = NewStoreFactory(cfg, nil).Create(ctx)
	require.NoError(t, err)
	defer backend.Close()
	tasks, err = backend.Tasks.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestStoreFactory_Errors(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Store.Backend = "mongodb"
	_, err := NewStoreFactory(cfg, nil).Create(context.Background())
	assert.Error(t, err)

	cfg = config.NewConfig()
	cfg.Store.Backend = config.BackendMemory
	cfg.Store.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = NewStoreFactory(cfg, nil).Create(context.Background())
	assert.Error(t, err)
}
