package models

import "time"

// WebAuthnCredential is a registered platform authenticator. A credential
// with FlaggedAt set was caught replaying a stale signature counter and is
// never accepted again.
type WebAuthnCredential struct {
	ID              string
	UserID          string
	Name            string
	CredentialID    []byte
	PublicKey       []byte
	AttestationType string
	AAGUID          []byte
	SignCount       uint32
	Transports      []string
	BackupEligible  bool
	BackupState     bool
	FlaggedAt       *time.Time
	CreatedAt       time.Time
	LastUsedAt      *time.Time
}

func (c *WebAuthnCredential) Flagged() bool {
	return c.FlaggedAt != nil
}
