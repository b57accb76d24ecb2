// Package sessions persists the server-side session records that back
// session tokens.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Revoke(ctx context.Context, id string, at time.Time) error
	RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
