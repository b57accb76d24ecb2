// Package services contains the server-side security core: primary-factor
// authentication, sessions, TOTP, WebAuthn ceremonies, vault envelopes and
// the admin operations. Services compose repositories from a
// repomanager.RepositoryManager and run multi-step writes inside dbx.WithTx.
package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
)

// HKDF labels for keys derived from configured roots.
const (
	decoySaltInfo   = "eterbox/prelogin-decoy/v1"
	totpSecretInfo  = "eterbox/totp-secret/v1"
	backupCodesInfo = "eterbox/backup-codes/v1"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// totpEnrolled reports whether userID must pass a second factor.
func totpEnrolled(ctx context.Context, rm repomanager.RepositoryManager, db dbx.DBTX, userID string) (bool, error) {
	s, err := rm.TwoFactor(db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.Active(), nil
}
