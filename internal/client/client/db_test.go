package client

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tables(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table'`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestInitDatabase_CreatesMetadataStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "eterbox.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)

	names := tables(t, db)
	assert.Contains(t, names, "metadata")
	assert.Contains(t, names, "goose_db_version")

	_, err = db.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES ('last_email', 'a@example.com')`)
	require.NoError(t, err)
	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'last_email'`).Scan(&v))
	assert.Equal(t, "a@example.com", v)
}

func TestRunMigrations_Twice(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "eterbox.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var applied int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM goose_db_version WHERE version_id > 0 AND is_applied`).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestInitDatabase_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "eterbox.db")

	db, err := InitDatabase(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, db)
}
