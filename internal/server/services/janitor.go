package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
)

// loginAttemptRetention bounds the audit trail.
const loginAttemptRetention = 90 * 24 * time.Hour

// Janitor periodically removes expired challenges and sessions and old
// login attempts. Expiry is enforced on read regardless; this only keeps
// the tables small.
type Janitor struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	interval    time.Duration
	now         func() time.Time
	log         logging.Logger
}

func NewJanitor(db *sql.DB, m repomanager.RepositoryManager, interval time.Duration, l logging.Logger) *Janitor {
	return &Janitor{db: db, repomanager: m, interval: interval, now: time.Now, log: l.With("module", "janitor")}
}

// Run sweeps every interval until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

func (j *Janitor) Sweep(ctx context.Context) {
	now := j.now()

	if n, err := j.repomanager.Challenges(j.db).DeleteExpired(ctx, now); err != nil {
		j.log.Error(ctx, "delete expired challenges", "error", err)
	} else if n > 0 {
		j.log.Debug(ctx, "expired challenges deleted", "count", n)
	}

	if n, err := j.repomanager.Sessions(j.db).DeleteExpired(ctx, now); err != nil {
		j.log.Error(ctx, "delete expired sessions", "error", err)
	} else if n > 0 {
		j.log.Debug(ctx, "expired sessions deleted", "count", n)
	}

	if n, err := j.repomanager.LoginAttempts(j.db).DeleteBefore(ctx, now.Add(-loginAttemptRetention)); err != nil {
		j.log.Error(ctx, "delete old login attempts", "error", err)
	} else if n > 0 {
		j.log.Debug(ctx, "old login attempts deleted", "count", n)
	}
}
