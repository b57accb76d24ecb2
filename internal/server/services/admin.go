package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
)

const (
	defaultAttemptsLimit = 50
	maxAttemptsLimit     = 500
)

// AdminService backs the role-gated operations. Authorization happens in
// the transport layer; these methods assume an admin caller.
type AdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sessions    *SessionService
	log         logging.Logger
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, sessions *SessionService, l logging.Logger) *AdminService {
	return &AdminService{db: db, repomanager: m, sessions: sessions, log: l.With("module", "admin")}
}

// ListLoginAttempts returns the newest attempts, optionally for one email.
func (s *AdminService) ListLoginAttempts(ctx context.Context, email string, limit int) ([]*models.LoginAttempt, error) {
	if limit <= 0 {
		limit = defaultAttemptsLimit
	}
	if limit > maxAttemptsLimit {
		limit = maxAttemptsLimit
	}
	return s.repomanager.LoginAttempts(s.db).List(ctx, normalizeEmail(email), limit)
}

// RevokeUser ends every session of userID.
func (s *AdminService) RevokeUser(ctx context.Context, adminID, userID string) (int64, error) {
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, userID); err != nil {
		return 0, err
	}
	n, err := s.sessions.RevokeAll(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.log.Info(ctx, "admin revoked sessions", "admin_id", adminID, "user_id", userID, "count", n)
	return n, nil
}
