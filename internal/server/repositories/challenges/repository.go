// Package challenges stores short-lived, single-use ceremony state.
package challenges

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Challenge) error
	// Get reads a challenge without consuming it.
	Get(ctx context.Context, id string, kind models.ChallengeKind) (*models.Challenge, error)
	// Consume deletes and returns the challenge. A second call for the same
	// id returns common.ErrorNotFound.
	Consume(ctx context.Context, id string, kind models.ChallengeKind) (*models.Challenge, error)
	// ConsumeOwned is Consume restricted to challenges issued to userID.
	// Someone else's challenge is left in place.
	ConsumeOwned(ctx context.Context, id string, kind models.ChallengeKind, userID string) (*models.Challenge, error)
	// IncrementAttempts bumps the attempt counter and returns the new value.
	IncrementAttempts(ctx context.Context, id string) (int, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
