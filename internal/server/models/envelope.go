package models

import "time"

// VaultEnvelope is one encrypted credential. Payload is the binary
// cryptox.Envelope; DisplayName and URL are the only plaintext fields.
type VaultEnvelope struct {
	ID            string
	UserID        string
	DisplayName   string
	URL           string
	Payload       []byte
	KeyGeneration int
	UpdatedAt     time.Time
}
