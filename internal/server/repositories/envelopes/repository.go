// Package envelopes persists encrypted vault items.
package envelopes

import (
	"context"

	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.VaultEnvelope, error)
	ListIDs(ctx context.Context, userID string) ([]string, error)
	// Upsert inserts or overwrites an envelope owned by the user. An id owned
	// by another user yields common.ErrorNotFound; a KeyGeneration that is no
	// longer the user's yields common.ErrStaleGeneration.
	Upsert(ctx context.Context, e *models.VaultEnvelope) error
	// UpdatePayload replaces the ciphertext during a rekey.
	UpdatePayload(ctx context.Context, userID, id string, payload []byte, generation int) error
	Delete(ctx context.Context, userID, id string) error
}
