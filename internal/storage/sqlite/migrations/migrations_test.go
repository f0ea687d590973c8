package migrations_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/gurama/tasktracker/internal/log"
	"github.com/gurama/tasktracker/internal/storage/sqlite/migrations"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestNewMigratorRequiresDB(t *testing.T) {
	_, err := migrations.NewMigrator(nil, log.Noop)
	assert.Error(t, err)
}

func TestMigratorUpDownUp(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := migrations.NewMigrator(db, nil)
	require.NoError(err)

	require.NoError(m.Up(ctx))
	assert.True(tableExists(t, db, "kv"))
	assert.True(tableExists(t, db, "tasktracker_schema_migrations"))

	// Running again is a no-op.
	require.NoError(m.Up(ctx))

	_, err = db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES ('tasks', '[]', 0)`)
	require.NoError(err)

	require.NoError(m.Down(ctx))
	assert.False(tableExists(t, db, "kv"))

	require.NoError(m.Up(ctx))
	assert.True(tableExists(t, db, "kv"))

	var count int
	require.NoError(db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&count))
	assert.Equal(0, count)
}
