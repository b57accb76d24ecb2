// Package common defines shared constants and sentinel errors used across
// client and server layers of EterBox. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Session token errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")
	ErrSessionRevoked = errors.New("session revoked")

	// Primary and second factor errors. Callers outside the server must not be
	// able to tell an unknown account from a wrong password.
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidSecondFactor  = errors.New("invalid second factor")
	ErrSecondFactorRequired = errors.New("second factor required")
	ErrTooManyAttempts      = errors.New("too many attempts")

	// WebAuthn ceremony errors.
	ErrChallengeNotFound       = errors.New("challenge not found")
	ErrChallengeExpired        = errors.New("challenge expired")
	ErrChallengeOriginMismatch = errors.New("challenge origin mismatch")
	ErrChallengeMismatch       = errors.New("challenge mismatch")
	ErrAssertionInvalid        = errors.New("assertion invalid")
	ErrCloneDetected           = errors.New("authenticator clone detected")

	// Vault errors.
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrRekeyIncomplete  = errors.New("rekey does not cover every envelope")
	ErrStaleGeneration  = errors.New("envelope sealed under a stale key generation")
)
