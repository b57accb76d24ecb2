package passkeys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

const selectColumns = `id, user_id, name, credential_id, public_key, attestation_type, aaguid,
		 sign_count, transports, backup_eligible, backup_state, flagged_at, created_at, last_used_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (*models.WebAuthnCredential, error) {
	var (
		c          models.WebAuthnCredential
		signCount  int64
		transports string
		flagged    sql.NullTime
		lastUsed   sql.NullTime
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.CredentialID, &c.PublicKey, &c.AttestationType, &c.AAGUID,
		&signCount, &transports, &c.BackupEligible, &c.BackupState, &flagged, &c.CreatedAt, &lastUsed)
	if err != nil {
		return nil, err
	}
	c.SignCount = uint32(signCount)
	if transports != "" {
		c.Transports = strings.Split(transports, ",")
	}
	if flagged.Valid {
		t := flagged.Time
		c.FlaggedAt = &t
	}
	if lastUsed.Valid {
		t := lastUsed.Time
		c.LastUsedAt = &t
	}
	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.WebAuthnCredential) error {
	query :=
		`INSERT INTO webauthn_credentials
		 (id, user_id, name, credential_id, public_key, attestation_type, aaguid, sign_count, transports, backup_eligible, backup_state)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 `
	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.CredentialID, c.PublicKey, c.AttestationType,
		c.AAGUID, int64(c.SignCount), strings.Join(c.Transports, ","), c.BackupEligible, c.BackupState)
	return dbx.WriteError(err)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.WebAuthnCredential, error) {
	query := `SELECT ` + selectColumns + `
		 FROM webauthn_credentials
		 WHERE user_id = $1
		 ORDER BY created_at
		 `
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.WebAuthnCredential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByCredentialID(ctx context.Context, credentialID []byte) (*models.WebAuthnCredential, error) {
	query := `SELECT ` + selectColumns + `
		 FROM webauthn_credentials
		 WHERE credential_id = $1
		 `
	c, err := scanCredential(r.db.QueryRowContext(ctx, query, credentialID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) UpdateSignCount(ctx context.Context, id string, prev, next uint32, backupState bool, at time.Time) error {
	query :=
		`UPDATE webauthn_credentials
		 SET sign_count = $3, backup_state = $4, last_used_at = $5
		 WHERE id = $1 AND flagged_at IS NULL AND sign_count = $2
		 `
	res, err := r.db.ExecContext(ctx, query, id, int64(prev), int64(next), backupState, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) Flag(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE webauthn_credentials SET flagged_at = $2 WHERE id = $1 AND flagged_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM webauthn_credentials WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}
