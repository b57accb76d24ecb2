// Package loginattempts records the authentication audit trail.
package loginattempts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type Repository interface {
	Record(ctx context.Context, a *models.LoginAttempt) error
	CountFailuresSince(ctx context.Context, email string, since time.Time) (int, error)
	List(ctx context.Context, email string, limit int) ([]*models.LoginAttempt, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}
