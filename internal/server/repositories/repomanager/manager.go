package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/envelopes"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/loginattempts"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/passkeys"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/twofactor"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pool or an open
// transaction, so services can compose them inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	TwoFactor(db dbx.DBTX) twofactor.Repository
	Passkeys(db dbx.DBTX) passkeys.Repository
	Challenges(db dbx.DBTX) challenges.Repository
	Envelopes(db dbx.DBTX) envelopes.Repository
	LoginAttempts(db dbx.DBTX) loginattempts.Repository
}
