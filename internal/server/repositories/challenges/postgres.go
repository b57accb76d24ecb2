package challenges

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Challenge) error {
	query :=
		`INSERT INTO challenges (id, kind, user_id, payload, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `
	var userID any
	if c.UserID != "" {
		userID = c.UserID
	}
	if _, err := r.db.ExecContext(ctx, query, c.ID, string(c.Kind), userID, c.Payload, c.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanChallenge(row *sql.Row) (*models.Challenge, error) {
	var (
		c      models.Challenge
		kind   string
		userID sql.NullString
	)
	if err := row.Scan(&c.ID, &kind, &userID, &c.Payload, &c.Attempts, &c.ExpiresAt, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c.Kind = models.ChallengeKind(kind)
	c.UserID = userID.String
	return &c, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string, kind models.ChallengeKind) (*models.Challenge, error) {
	query :=
		`SELECT id, kind, user_id, payload, attempts, expires_at, created_at
		 FROM challenges
		 WHERE id = $1 AND kind = $2
		 `
	return scanChallenge(r.db.QueryRowContext(ctx, query, id, string(kind)))
}

func (r *PostgresRepository) Consume(ctx context.Context, id string, kind models.ChallengeKind) (*models.Challenge, error) {
	query :=
		`DELETE FROM challenges
		 WHERE id = $1 AND kind = $2
		 RETURNING id, kind, user_id, payload, attempts, expires_at, created_at
		 `
	return scanChallenge(r.db.QueryRowContext(ctx, query, id, string(kind)))
}

func (r *PostgresRepository) ConsumeOwned(ctx context.Context, id string, kind models.ChallengeKind, userID string) (*models.Challenge, error) {
	query :=
		`DELETE FROM challenges
		 WHERE id = $1 AND kind = $2 AND user_id = $3
		 RETURNING id, kind, user_id, payload, attempts, expires_at, created_at
		 `
	return scanChallenge(r.db.QueryRowContext(ctx, query, id, string(kind), userID))
}

func (r *PostgresRepository) IncrementAttempts(ctx context.Context, id string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`UPDATE challenges SET attempts = attempts + 1 WHERE id = $1 RETURNING attempts`, id).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM challenges WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
