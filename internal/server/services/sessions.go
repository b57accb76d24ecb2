package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/config"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// SessionToken is what the client keeps after a successful login.
type SessionToken struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}

// SessionService issues and validates session tokens. A token is only as
// good as its sessions row: revocation takes effect on the next call.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *auth.TokenCodec
	ttl         time.Duration
	now         func() time.Time
	log         logging.Logger
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *SessionService {
	s := &SessionService{
		db:          db,
		repomanager: m,
		ttl:         cfg.SessionTTL,
		now:         time.Now,
		log:         l.With("module", "sessions"),
	}
	s.codec = auth.NewTokenCodec([]byte(cfg.SecretKey), func() time.Time { return s.now() })
	return s
}

// Issue creates a session for user. It refuses to do so without a verified
// second factor when the user has one enrolled.
func (s *SessionService) Issue(ctx context.Context, user *models.User, secondFactor bool) (*SessionToken, error) {
	return s.issue(ctx, s.db, user, secondFactor)
}

func (s *SessionService) issue(ctx context.Context, db dbx.DBTX, user *models.User, secondFactor bool) (*SessionToken, error) {
	if !secondFactor {
		enrolled, err := totpEnrolled(ctx, s.repomanager, db, user.ID)
		if err != nil {
			return nil, fmt.Errorf("check second factor: %w", err)
		}
		if enrolled {
			return nil, common.ErrSecondFactorRequired
		}
	}

	now := s.now()
	sess := &models.Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		IssuedAt:     now,
		ExpiresAt:    now.Add(s.ttl),
		SecondFactor: secondFactor,
	}
	if err := s.repomanager.Sessions(db).Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.codec.Sign(sess.ID, user.ID, user.Role, secondFactor, sess.IssuedAt, sess.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	s.log.Info(ctx, "session issued", "user_id", user.ID, "session_id", sess.ID, "mfa", secondFactor)
	return &SessionToken{Token: token, SessionID: sess.ID, ExpiresAt: sess.ExpiresAt}, nil
}

// Validate checks the token signature and lifetime, then the sessions row.
func (s *SessionService) Validate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.codec.Parse(token)
	if err != nil {
		return nil, err
	}

	sess, err := s.repomanager.Sessions(s.db).Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}
	if sess.UserID != claims.Subject {
		return nil, common.ErrInvalidToken
	}
	if sess.RevokedAt != nil {
		return nil, common.ErrSessionRevoked
	}
	if !s.now().Before(sess.ExpiresAt) {
		return nil, common.ErrSessionExpired
	}
	return claims, nil
}

func (s *SessionService) Revoke(ctx context.Context, sessionID string) error {
	err := s.repomanager.Sessions(s.db).Revoke(ctx, sessionID, s.now())
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	s.log.Info(ctx, "session revoked", "session_id", sessionID)
	return nil
}

// RevokeAll ends every session of the user, including the caller's.
func (s *SessionService) RevokeAll(ctx context.Context, userID string) (int64, error) {
	return s.revokeAll(ctx, s.db, userID)
}

func (s *SessionService) revokeAll(ctx context.Context, db dbx.DBTX, userID string) (int64, error) {
	n, err := s.repomanager.Sessions(db).RevokeAllForUser(ctx, userID, s.now())
	if err != nil {
		return 0, err
	}
	s.log.Info(ctx, "sessions revoked", "user_id", userID, "count", n)
	return n, nil
}
