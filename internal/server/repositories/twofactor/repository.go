// Package twofactor persists TOTP secrets and backup codes.
package twofactor

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, userID string) (*models.TOTPSecret, error)
	// SavePending stores a new unconfirmed secret. An already active secret
	// stays active until Activate.
	SavePending(ctx context.Context, userID string, ciphertext []byte, at time.Time) error
	// Activate promotes the pending secret and records step as consumed.
	Activate(ctx context.Context, userID string, step int64, at time.Time) error
	// AdvanceStep moves last_used_step forward to step. It fails with
	// common.ErrorNotFound if the stored step is already >= step.
	AdvanceStep(ctx context.Context, userID string, step int64) error
	Disable(ctx context.Context, userID string) error

	ReplaceBackupCodes(ctx context.Context, userID string, codes []*models.BackupCode) error
	ConsumeBackupCode(ctx context.Context, userID string, hash []byte, at time.Time) error
	CountUnusedBackupCodes(ctx context.Context, userID string) (int, error)
	DeleteBackupCodes(ctx context.Context, userID string) error
}
