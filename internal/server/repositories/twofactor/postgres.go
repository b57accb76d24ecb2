package twofactor

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

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.TOTPSecret, error) {
	query :=
		`SELECT user_id, state, secret_ciphertext, pending_ciphertext, issued_at, confirmed_at, last_used_step
		 FROM totp_secrets
		 WHERE user_id = $1
		 `

	var (
		s         models.TOTPSecret
		state     string
		confirmed sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &state, &s.SecretCiphertext, &s.PendingCiphertext, &s.IssuedAt, &confirmed, &s.LastUsedStep)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	s.State = models.TOTPState(state)
	if confirmed.Valid {
		t := confirmed.Time
		s.ConfirmedAt = &t
	}
	return &s, nil
}

func (r *PostgresRepository) SavePending(ctx context.Context, userID string, ciphertext []byte, at time.Time) error {
	query :=
		`INSERT INTO totp_secrets (user_id, state, pending_ciphertext, issued_at)
		 VALUES ($1, 'pending', $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET pending_ciphertext = EXCLUDED.pending_ciphertext,
		     issued_at = EXCLUDED.issued_at,
		     state = CASE WHEN totp_secrets.state = 'active' THEN 'active' ELSE 'pending' END
		 `
	if _, err := r.db.ExecContext(ctx, query, userID, ciphertext, at); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Activate(ctx context.Context, userID string, step int64, at time.Time) error {
	query :=
		`UPDATE totp_secrets
		 SET secret_ciphertext = pending_ciphertext, pending_ciphertext = NULL,
		     state = 'active', confirmed_at = $3, last_used_step = $2
		 WHERE user_id = $1 AND pending_ciphertext IS NOT NULL
		 `
	res, err := r.db.ExecContext(ctx, query, userID, step, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) AdvanceStep(ctx context.Context, userID string, step int64) error {
	query :=
		`UPDATE totp_secrets SET last_used_step = $2
		 WHERE user_id = $1 AND state = 'active' AND last_used_step < $2
		 `
	res, err := r.db.ExecContext(ctx, query, userID, step)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) Disable(ctx context.Context, userID string) error {
	query :=
		`UPDATE totp_secrets
		 SET state = 'disabled', secret_ciphertext = NULL, pending_ciphertext = NULL
		 WHERE user_id = $1
		 `
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) ReplaceBackupCodes(ctx context.Context, userID string, codes []*models.BackupCode) error {
	if err := r.DeleteBackupCodes(ctx, userID); err != nil {
		return err
	}
	for _, c := range codes {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO backup_codes (id, user_id, code_hash) VALUES ($1, $2, $3)`,
			c.ID, userID, c.CodeHash)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) ConsumeBackupCode(ctx context.Context, userID string, hash []byte, at time.Time) error {
	query :=
		`UPDATE backup_codes SET used_at = $3
		 WHERE user_id = $1 AND code_hash = $2 AND used_at IS NULL
		 `
	res, err := r.db.ExecContext(ctx, query, userID, hash, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) CountUnusedBackupCodes(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM backup_codes WHERE user_id = $1 AND used_at IS NULL`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteBackupCodes(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM backup_codes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
