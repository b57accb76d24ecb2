package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

var userColumns = []string{"id", "email", "name", "role", "password_hash", "kdf_salt", "kdf_time", "kdf_memory_kib",
	"kdf_threads", "key_generation", "webauthn_handle", "created_at", "last_signed_in"}

func sampleUser() *models.User {
	return &models.User{
		ID: "u-1", Email: "alice@example.com", Name: "Alice", Role: guard.RoleUser,
		PasswordHash: "$argon2id$...", KDFSalt: []byte("salt-salt-salt-s"),
		KDF:           cryptox.KDFParams{Time: 3, MemoryKiB: 65536, Threads: 4},
		KeyGeneration: 1, WebAuthnHandle: []byte("handle"),
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u := sampleUser()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+users\s*\(id,\s*email,.*RETURNING\s+created_at`).
		WithArgs("u-1", "alice@example.com", "Alice", "user", "$argon2id$...", u.KDFSalt,
			int64(3), int64(65536), int64(4), 1, []byte("handle")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, created, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), sampleUser())
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), sampleUser())
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	signed := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*email.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1`).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			"u-1", "alice@example.com", "Alice", "admin", "hash", []byte("salt"), int64(3), int64(65536), int64(4),
			2, []byte("handle"), time.Now(), signed))

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, guard.RoleAdmin, u.Role)
	assert.Equal(t, cryptox.KDFParams{Time: 3, MemoryKiB: 65536, Threads: 4}, u.KDF)
	assert.Equal(t, 2, u.KeyGeneration)
	require.NotNil(t, u.LastSignedIn)
	assert.Equal(t, signed, *u.LastSignedIn)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByWebAuthnHandle_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE\s+webauthn_handle\s*=\s*\$1`).
		WithArgs([]byte("h")).
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByWebAuthnHandle(context.Background(), []byte("h"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestUpdateCredentials(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	kdf := cryptox.KDFParams{Time: 4, MemoryKiB: 131072, Threads: 4}
	q := `(?s)UPDATE\s+users.*key_generation\s*=\s*key_generation\s*\+\s*1.*WHERE\s+id\s*=\s*\$1\s+AND\s+key_generation\s*=\s*\$7.*RETURNING\s+key_generation`

	mock.ExpectQuery(q).
		WithArgs("u-1", "new-hash", []byte("new-salt"), int64(4), int64(131072), int64(4), 1).
		WillReturnRows(sqlmock.NewRows([]string{"key_generation"}).AddRow(2))

	gen, err := repo.UpdateCredentials(context.Background(), "u-1", "new-hash", []byte("new-salt"), kdf, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, gen)

	mock.ExpectQuery(q).WillReturnError(sql.ErrNoRows)
	_, err = repo.UpdateCredentials(context.Background(), "u-1", "new-hash", []byte("new-salt"), kdf, 1)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestTouchLastSignedIn(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now()
	mock.ExpectExec(`UPDATE\s+users\s+SET\s+last_signed_in`).
		WithArgs("u-1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchLastSignedIn(context.Background(), "u-1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLockGeneration(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `SELECT\s+key_generation\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s+FOR\s+UPDATE`
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(sqlmock.NewRows([]string{"key_generation"}).AddRow(3))

	gen, err := repo.LockGeneration(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 3, gen)

	mock.ExpectQuery(q).WithArgs("u-2").WillReturnError(sql.ErrNoRows)
	_, err = repo.LockGeneration(context.Background(), "u-2")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePasswordHash(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `UPDATE\s+users\s+SET\s+password_hash\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+AND\s+password_hash\s*=\s*\$2`
	mock.ExpectExec(q).WithArgs("u-1", "old", "new").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdatePasswordHash(context.Background(), "u-1", "old", "new"))

	mock.ExpectExec(q).WithArgs("u-1", "old", "new").WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.UpdatePasswordHash(context.Background(), "u-1", "old", "new"), common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
