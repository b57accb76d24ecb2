// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/server/migrations"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/envelopes"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/loginattempts"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/passkeys"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/twofactor"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) TwoFactor(db dbx.DBTX) twofactor.Repository {
	return twofactor.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Passkeys(db dbx.DBTX) passkeys.Repository {
	return passkeys.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Challenges(db dbx.DBTX) challenges.Repository {
	return challenges.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Envelopes(db dbx.DBTX) envelopes.Repository {
	return envelopes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) LoginAttempts(db dbx.DBTX) loginattempts.Repository {
	return loginattempts.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
