package models

import "time"

type TOTPState string

const (
	TOTPPending  TOTPState = "pending"
	TOTPActive   TOTPState = "active"
	TOTPDisabled TOTPState = "disabled"
)

// TOTPSecret stores the encrypted shared secrets. SecretCiphertext is the
// active secret; PendingCiphertext awaits confirmation and does not replace
// the active one until then. LastUsedStep is the highest accepted time step.
type TOTPSecret struct {
	UserID            string
	State             TOTPState
	SecretCiphertext  []byte
	PendingCiphertext []byte
	IssuedAt          time.Time
	ConfirmedAt       *time.Time
	LastUsedStep      int64
}

// Active reports whether codes must be checked against this secret.
func (s *TOTPSecret) Active() bool {
	return s != nil && s.State == TOTPActive && len(s.SecretCiphertext) > 0
}

// BackupCode is a single-use recovery code; only a keyed hash is stored.
type BackupCode struct {
	ID        string
	UserID    string
	CodeHash  []byte
	UsedAt    *time.Time
	CreatedAt time.Time
}
