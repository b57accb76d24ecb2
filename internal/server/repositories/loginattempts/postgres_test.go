package loginattempts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestRecord_UnknownUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now()
	mock.ExpectExec(`INSERT\s+INTO\s+login_attempts`).
		WithArgs(nil, "ghost@example.com", false, "unknown_email", "10.0.0.1:5555", at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Record(context.Background(), &models.LoginAttempt{
		Email: "ghost@example.com", Reason: "unknown_email", RemoteAddr: "10.0.0.1:5555", CreatedAt: at,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountFailuresSince(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	since := time.Now().Add(-15 * time.Minute)
	mock.ExpectQuery(`(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+login_attempts.*success\s*=\s*FALSE`).
		WithArgs("a@example.com", since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountFailuresSince(context.Background(), "a@example.com", since)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)FROM\s+login_attempts.*ORDER\s+BY\s+created_at\s+DESC`).
		WithArgs("", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email", "success", "reason", "remote_addr", "created_at"}).
			AddRow(int64(2), "u-1", "a@example.com", true, "", "", now).
			AddRow(int64(1), nil, "b@example.com", false, "unknown_email", "", now))

	list, err := repo.List(context.Background(), "", 50)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "u-1", list[0].UserID)
	assert.Empty(t, list[1].UserID)
	assert.False(t, list[1].Success)
}
