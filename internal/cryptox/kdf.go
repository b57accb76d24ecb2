// Package cryptox holds the vault cryptography shared by client and server:
// master key derivation (Argon2id), key separation (HKDF-SHA256),
// AES-256-GCM sealing and the versioned credential envelope.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	// SaltLen is the length of a freshly generated KDF salt and the minimum
	// accepted by DeriveMasterKey.
	SaltLen = 16
	// KeySize is the AES-256 key length.
	KeySize = 32

	minTime      = 1
	minMemoryKiB = 19 * 1024

	vaultKeyInfo   = "eterbox/vault-key/v1"
	authSecretInfo = "eterbox/auth-secret/v1"
)

// KDFParams is the Argon2id work factor. It is stored per user on the server
// so it can be raised for new derivations without breaking old accounts.
type KDFParams struct {
	Time      uint32 `json:"time"`
	MemoryKiB uint32 `json:"memory_kib"`
	Threads   uint8  `json:"threads"`
}

// DefaultKDFParams returns the parameters used for new accounts.
func DefaultKDFParams() KDFParams {
	return KDFParams{Time: 3, MemoryKiB: 64 * 1024, Threads: 4}
}

// Validate rejects parameters below the accepted floor.
func (p KDFParams) Validate() error {
	if p.Time < minTime || p.MemoryKiB < minMemoryKiB || p.Threads == 0 {
		return fmt.Errorf("%w: kdf params t=%d m=%d p=%d below minimum", common.ErrorValidation, p.Time, p.MemoryKiB, p.Threads)
	}
	return nil
}

// NewSalt returns SaltLen random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltLen)
}

// MasterKey is the Argon2id output. It never leaves the client; Split derives
// the two keys that are actually used.
type MasterKey struct {
	key Secret
}

// DeriveMasterKey stretches password with salt. The result is deterministic
// for identical inputs.
func DeriveMasterKey(password, salt []byte, p KDFParams) (*MasterKey, error) {
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: empty password", common.ErrorValidation)
	}
	if len(salt) < SaltLen {
		return nil, fmt.Errorf("%w: salt shorter than %d bytes", common.ErrorValidation, SaltLen)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	key := argon2.IDKey(password, salt, p.Time, p.MemoryKiB, p.Threads, KeySize)
	return &MasterKey{key: key}, nil
}

// Split separates the master key into the vault key (encrypts envelopes,
// stays on the client) and the auth secret (sent to the server in place of
// the password). Knowing one does not reveal the other.
func (m *MasterKey) Split() (vaultKey, authSecret Secret, err error) {
	vaultKey, err = DeriveSubkey(m.key, vaultKeyInfo, nil, KeySize)
	if err != nil {
		return nil, nil, err
	}
	authSecret, err = DeriveSubkey(m.key, authSecretInfo, nil, KeySize)
	if err != nil {
		return nil, nil, err
	}
	return vaultKey, authSecret, nil
}

// Wipe zeroes the master key.
func (m *MasterKey) Wipe() {
	m.key.Zero()
}

// DeriveSubkey expands root into n bytes bound to info and salt with
// HKDF-SHA256.
func DeriveSubkey(root []byte, info string, salt []byte, n int) (Secret, error) {
	if len(root) == 0 {
		return nil, fmt.Errorf("%w: empty root key", common.ErrorValidation)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, root, salt, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return out, nil
}

// randReader is a seam for tests.
var randReader io.Reader = rand.Reader
