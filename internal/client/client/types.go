package client

import (
	"time"

	"github.com/dmitrijs2005/eterbox/internal/cryptox"
)

// The types below are what the CLI services work with. GRPCClient converts
// them to and from the eterbox.v1 messages.

type PreloginResponse struct {
	Salt []byte
	KDF  cryptox.KDFParams
}

// RegisterRequest carries the auth secret derived on the client. The master
// password never leaves the client.
type RegisterRequest struct {
	Name       string
	Email      string
	AuthSecret []byte
	KDFSalt    []byte
	KDF        cryptox.KDFParams
}

// LoginResponse holds either a session or a second factor demand.
type LoginResponse struct {
	SessionToken         string
	ExpiresAt            time.Time
	RequiresSecondFactor bool
	UserID               string
	MFAToken             string
	Methods              []string
	KeyGeneration        int
}

type WhoAmIResponse struct {
	UserID       string
	SessionID    string
	Role         string
	SecondFactor bool
}

type EnvelopeRekey struct {
	ID      string
	Payload []byte
}

type ChangePasswordRequest struct {
	CurrentAuthSecret  []byte
	NewAuthSecret      []byte
	NewKDFSalt         []byte
	NewKDF             cryptox.KDFParams
	ExpectedGeneration int
	Envelopes          []EnvelopeRekey
}

type SessionResponse struct {
	SessionToken string
	ExpiresAt    time.Time
}

type TwoFactorSetupResponse struct {
	Secret string
	URI    string
}

type TwoFactorStatusResponse struct {
	Enabled         bool
	State           string
	BackupCodesLeft int
}

type Passkey struct {
	ID         string
	Name       string
	CreatedAt  time.Time
	LastUsedAt *time.Time
	Flagged    bool
}

type Envelope struct {
	ID            string
	DisplayName   string
	URL           string
	Payload       []byte
	KeyGeneration int
	UpdatedAt     time.Time
}

type LoginAttempt struct {
	ID         int64
	UserID     string
	Email      string
	Success    bool
	Reason     string
	RemoteAddr string
	CreatedAt  time.Time
}
