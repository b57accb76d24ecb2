package loginattempts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(ctx context.Context, a *models.LoginAttempt) error {
	query :=
		`INSERT INTO login_attempts (user_id, email, success, reason, remote_addr, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `
	var userID any
	if a.UserID != "" {
		userID = a.UserID
	}
	if _, err := r.db.ExecContext(ctx, query, userID, a.Email, a.Success, a.Reason, a.RemoteAddr, a.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountFailuresSince(ctx context.Context, email string, since time.Time) (int, error) {
	query :=
		`SELECT COUNT(*) FROM login_attempts
		 WHERE email = $1 AND success = FALSE AND created_at >= $2
		 `
	var n int
	if err := r.db.QueryRowContext(ctx, query, email, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// List returns the newest attempts first. An empty email lists all users.
func (r *PostgresRepository) List(ctx context.Context, email string, limit int) ([]*models.LoginAttempt, error) {
	query :=
		`SELECT id, user_id, email, success, reason, remote_addr, created_at
		 FROM login_attempts
		 WHERE ($1 = '' OR email = $1)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2
		 `
	rows, err := r.db.QueryContext(ctx, query, email, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.LoginAttempt
	for rows.Next() {
		var (
			a      models.LoginAttempt
			userID sql.NullString
		)
		if err := rows.Scan(&a.ID, &userID, &a.Email, &a.Success, &a.Reason, &a.RemoteAddr, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		a.UserID = userID.String
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM login_attempts WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
