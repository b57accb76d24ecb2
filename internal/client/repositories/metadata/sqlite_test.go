package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "email", []byte("a@b.c")))

	v, err := r.Get(ctx, "email")
	require.NoError(t, err)
	assert.Equal(t, []byte("a@b.c"), v)
}

func TestGet_AbsentIsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestDelete_ManyKeysIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{1}))
	require.NoError(t, r.Set(ctx, "b", []byte{2}))
	require.NoError(t, r.Set(ctx, "c", []byte{3}))

	require.NoError(t, r.Delete(ctx, "a", "b", "missing"))
	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx))

	for _, k := range []string{"a", "b"} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, v, k)
	}
	v, err := r.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, v)
}

func TestWithTx_RollbackDiscardsWrites(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		require.NoError(t, NewSQLiteRepository(tx).Set(ctx, "k", []byte("v")))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	v, err := NewSQLiteRepository(db).Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	assert.ErrorContains(t, err, `get metadata "k"`)
	assert.ErrorContains(t, r.Set(ctx, "k", nil), `set metadata "k"`)
	assert.ErrorContains(t, r.Delete(ctx, "k"), "delete metadata")
}
