// Package passkeys persists WebAuthn credentials.
package passkeys

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.WebAuthnCredential) error
	ListByUser(ctx context.Context, userID string) ([]*models.WebAuthnCredential, error)
	GetByCredentialID(ctx context.Context, credentialID []byte) (*models.WebAuthnCredential, error)
	// UpdateSignCount stores next only if the stored counter still equals
	// prev and the credential is not flagged.
	UpdateSignCount(ctx context.Context, id string, prev, next uint32, backupState bool, at time.Time) error
	Flag(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, userID, id string) error
}
