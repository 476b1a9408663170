package migrations

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sqlx.DB, name string) bool {
	t.Helper()
	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name)
	require.NoError(t, err)
	return count == 1
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, m.Up)
		assert.NotEmpty(t, m.Down)
	}
	assert.Equal(t, "create_categories", migrations[0].Name)
	assert.Equal(t, "create_tasks", migrations[1].Name)
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)

	require.NoError(t, RunMigrations(ctx, db))

	assert.True(t, tableExists(t, db, "tasks"))
	assert.True(t, tableExists(t, db, "categories"))

	var versions []int
	require.NoError(t, db.Select(&versions, "SELECT version FROM migrations ORDER BY version"))
	assert.Equal(t, []int{1, 2, 3}, versions)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlx.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	_, err = db.Exec(`INSERT INTO tasks (id, title, created_at) VALUES (1, 'kept', '2026-10-18T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM tasks"))
	assert.Equal(t, 1, count, "re-running migrations keeps data")
}

func TestRunMigrations_DirtyDatabase(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)

	_, err := db.Exec(`
		CREATE TABLE migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL,
			dirty BOOLEAN NOT NULL DEFAULT FALSE
		)
	`)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO migrations (version, applied_at, dirty) VALUES (1, '2026-10-18T00:00:00Z', TRUE)")
	require.NoError(t, err)

	err = RunMigrations(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is in a dirty state")
	assert.Contains(t, err.Error(), "failed migration(s): [1]")
}

func TestRunMigrations_FailureRollsBackAndRetries(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)

	// A conflicting tasks table makes the index migration fail.
	_, err := db.Exec(`CREATE TABLE tasks (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	err = RunMigrations(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply migration 3")

	var recorded int
	require.NoError(t, db.Get(&recorded, "SELECT COUNT(*) FROM migrations WHERE version = 3"))
	assert.Zero(t, recorded, "failed migration leaves no version row")

	err = RunMigrations(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply migration 3")
	assert.NotContains(t, err.Error(), "dirty state")

	// once the conflict is gone the same database migrates cleanly
	_, err = db.Exec(`DROP TABLE tasks`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM migrations WHERE version = 2`)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, db))
	applied, err := getAppliedMigrations(ctx, db)
	require.NoError(t, err)
	assert.Len(t, applied, 3)
	dirty, err := getDirtyMigrations(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, dirty)
}

func TestRollback(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, Rollback(ctx, db, 1))

	assert.False(t, tableExists(t, db, "tasks"))
	assert.True(t, tableExists(t, db, "categories"))

	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "tasks"))
}

func TestSplitStatements(t *testing.T) {
	script := "CREATE TABLE a (id INT);\n\n  CREATE INDEX i ON a (id);\n"
	stmts := SplitStatements(script)

	require.Len(t, stmts, 2)
	assert.True(t, strings.HasPrefix(stmts[0], "CREATE TABLE"))
	assert.Equal(t, "CREATE INDEX i ON a (id)", stmts[1])
	assert.Empty(t, SplitStatements(" ;\n; "))
}
