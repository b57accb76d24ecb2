package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

const selectUser = `SELECT id, email, name, role, password_hash, kdf_salt, kdf_time, kdf_memory_kib, kdf_threads,
		 key_generation, webauthn_handle, created_at, last_signed_in
		 FROM users
		 `

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u *models.User) error {
	query :=
		`INSERT INTO users (id, email, name, role, password_hash, kdf_salt, kdf_time, kdf_memory_kib, kdf_threads, key_generation, webauthn_handle)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		u.ID, u.Email, u.Name, string(u.Role), u.PasswordHash, u.KDFSalt,
		int64(u.KDF.Time), int64(u.KDF.MemoryKiB), int64(u.KDF.Threads), u.KeyGeneration, u.WebAuthnHandle,
	).Scan(&u.CreatedAt)

	return dbx.WriteError(err)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUser+`WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUser+`WHERE email = $1`, email)
}

func (r *PostgresRepository) GetByWebAuthnHandle(ctx context.Context, handle []byte) (*models.User, error) {
	return r.getOne(ctx, selectUser+`WHERE webauthn_handle = $1`, handle)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		u                        models.User
		role                     string
		kdfTime, kdfMem, threads int64
		lastSignedIn             sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &role, &u.PasswordHash, &u.KDFSalt, &kdfTime, &kdfMem, &threads,
		&u.KeyGeneration, &u.WebAuthnHandle, &u.CreatedAt, &lastSignedIn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	u.Role = guard.Role(role)
	u.KDF = cryptox.KDFParams{Time: uint32(kdfTime), MemoryKiB: uint32(kdfMem), Threads: uint8(threads)}
	if lastSignedIn.Valid {
		t := lastSignedIn.Time
		u.LastSignedIn = &t
	}
	return &u, nil
}

func (r *PostgresRepository) LockGeneration(ctx context.Context, id string) (int, error) {
	var gen int
	err := r.db.QueryRowContext(ctx, `SELECT key_generation FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&gen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return gen, nil
}

func (r *PostgresRepository) UpdateCredentials(ctx context.Context, id, passwordHash string, salt []byte, kdf cryptox.KDFParams, expected int) (int, error) {
	query :=
		`UPDATE users
		 SET password_hash = $2, kdf_salt = $3, kdf_time = $4, kdf_memory_kib = $5, kdf_threads = $6,
		     key_generation = key_generation + 1
		 WHERE id = $1 AND key_generation = $7
		 RETURNING key_generation
		 `

	var gen int
	err := r.db.QueryRowContext(ctx, query, id, passwordHash, salt,
		int64(kdf.Time), int64(kdf.MemoryKiB), int64(kdf.Threads), expected).Scan(&gen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return gen, nil
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id, old, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $3 WHERE id = $1 AND password_hash = $2`, id, old, hash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.AffectedOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) TouchLastSignedIn(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_signed_in = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
