// Package models holds the server-side persistence types.
package models

import (
	"time"

	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/guard"
)

// User is an account. PasswordHash is a PHC-encoded Argon2id hash of the
// client's auth secret, never of the master password itself. KDFSalt and KDF
// are handed back to the client at prelogin so it can re-derive its keys.
type User struct {
	ID             string
	Email          string
	Name           string
	Role           guard.Role
	PasswordHash   string
	KDFSalt        []byte
	KDF            cryptox.KDFParams
	KeyGeneration  int
	WebAuthnHandle []byte
	CreatedAt      time.Time
	LastSignedIn   *time.Time
}

// SecondFactorState summarises which second factors a user has enrolled.
type SecondFactorState string

const (
	SecondFactorNone     SecondFactorState = "none"
	SecondFactorTOTP     SecondFactorState = "totp"
	SecondFactorWebAuthn SecondFactorState = "webauthn"
	SecondFactorBoth     SecondFactorState = "both"
)

func NewSecondFactorState(totp, webauthn bool) SecondFactorState {
	switch {
	case totp && webauthn:
		return SecondFactorBoth
	case totp:
		return SecondFactorTOTP
	case webauthn:
		return SecondFactorWebAuthn
	default:
		return SecondFactorNone
	}
}

func (s SecondFactorState) Enrolled() bool {
	return s != SecondFactorNone && s != ""
}
