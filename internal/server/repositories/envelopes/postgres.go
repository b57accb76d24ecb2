package envelopes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.VaultEnvelope, error) {
	query :=
		`SELECT id, user_id, display_name, url, payload, key_generation, updated_at
		 FROM vault_envelopes
		 WHERE user_id = $1
		 ORDER BY updated_at
		 `
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.VaultEnvelope
	for rows.Next() {
		var e models.VaultEnvelope
		if err := rows.Scan(&e.ID, &e.UserID, &e.DisplayName, &e.URL, &e.Payload, &e.KeyGeneration, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM vault_envelopes WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ids, nil
}

// Upsert writes e only while the owner's key generation still equals
// e.KeyGeneration. FOR SHARE makes it wait for an in-flight rekey, which
// then either sees this row or leaves it unwritten.
func (r *PostgresRepository) Upsert(ctx context.Context, e *models.VaultEnvelope) error {
	query :=
		`INSERT INTO vault_envelopes (id, user_id, display_name, url, payload, key_generation, updated_at)
		 SELECT $1::uuid, u.id, $3::text, $4::text, $5::bytea, $6::integer, $7::timestamptz
		 FROM users u
		 WHERE u.id = $2 AND u.key_generation = $6
		 FOR SHARE OF u
		 ON CONFLICT (id) DO UPDATE
		 SET display_name = EXCLUDED.display_name, url = EXCLUDED.url, payload = EXCLUDED.payload,
		     key_generation = EXCLUDED.key_generation, updated_at = EXCLUDED.updated_at
		 WHERE vault_envelopes.user_id = EXCLUDED.user_id
		 `
	res, err := r.db.ExecContext(ctx, query, e.ID, e.UserID, e.DisplayName, e.URL, e.Payload, e.KeyGeneration, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 1 {
		return nil
	}
	return r.classifyRejected(ctx, e)
}

// classifyRejected tells a stale generation apart from an id owned by
// someone else once Upsert wrote nothing.
func (r *PostgresRepository) classifyRejected(ctx context.Context, e *models.VaultEnvelope) error {
	var gen int
	err := r.db.QueryRowContext(ctx, `SELECT key_generation FROM users WHERE id = $1`, e.UserID).Scan(&gen)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrorNotFound
	case err != nil:
		return fmt.Errorf("db error: %w", err)
	case gen != e.KeyGeneration:
		return fmt.Errorf("%w: envelope generation %d, account generation %d",
			common.ErrStaleGeneration, e.KeyGeneration, gen)
	default:
		return common.ErrorNotFound
	}
}

func (r *PostgresRepository) UpdatePayload(ctx context.Context, userID, id string, payload []byte, generation int) error {
	query :=
		`UPDATE vault_envelopes SET payload = $3, key_generation = $4, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 `
	res, err := r.db.ExecContext(ctx, query, id, userID, payload, generation)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vault_envelopes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}
