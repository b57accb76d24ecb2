// Package users persists accounts.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByWebAuthnHandle(ctx context.Context, handle []byte) (*models.User, error)
	// LockGeneration locks the user row for the rest of the transaction and
	// returns its key generation.
	LockGeneration(ctx context.Context, id string) (int, error)
	// UpdateCredentials swaps the password hash and KDF inputs and bumps the
	// key generation, provided the stored generation still equals expected.
	UpdateCredentials(ctx context.Context, id, passwordHash string, salt []byte, kdf cryptox.KDFParams, expected int) (int, error)
	// UpdatePasswordHash replaces the hash only while it still equals old.
	UpdatePasswordHash(ctx context.Context, id, old, hash string) error
	TouchLastSignedIn(ctx context.Context, id string, at time.Time) error
}
