package models

import "time"

type ChallengeKind string

const (
	ChallengeWebAuthnRegistration ChallengeKind = "webauthn_registration"
	ChallengeWebAuthnLogin        ChallengeKind = "webauthn_login"
	// ChallengeMFALogin binds the second login step to a verified password.
	ChallengeMFALogin ChallengeKind = "mfa_login"
)

// Challenge is a server-held, single-use, expiring ceremony state. Payload
// is kind-specific JSON (WebAuthn session data for ceremonies).
type Challenge struct {
	ID        string
	Kind      ChallengeKind
	UserID    string
	Payload   []byte
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (c *Challenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
