package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrMalformedHash = errors.New("malformed password hash")

// randReader is a seam for tests.
var randReader io.Reader = rand.Reader

// HashParams are the argon2id work factors for stored password hashes.
type HashParams struct {
	Time      uint32 `json:"time" yaml:"time"`
	MemoryKiB uint32 `json:"memory_kib" yaml:"memory_kib"`
	Threads   uint8  `json:"threads" yaml:"threads"`
	SaltLen   uint32 `json:"salt_len" yaml:"salt_len"`
	KeyLen    uint32 `json:"key_len" yaml:"key_len"`
}

var DefaultHashParams = HashParams{
	Time:      3,
	MemoryKiB: 64 * 1024,
	Threads:   2,
	SaltLen:   16,
	KeyLen:    32,
}

func (p HashParams) Validate() error {
	if p.Time < 1 || p.MemoryKiB < 8*uint32(p.Threads) || p.Threads == 0 {
		return fmt.Errorf("invalid argon2id parameters t=%d m=%d p=%d", p.Time, p.MemoryKiB, p.Threads)
	}
	if p.SaltLen < 16 || p.KeyLen < 16 {
		return fmt.Errorf("salt and key length must be at least 16 bytes")
	}
	return nil
}

// PasswordHasher produces and checks PHC-formatted argon2id hashes.
type PasswordHasher struct {
	params HashParams
	dummy  string
}

func NewPasswordHasher(p HashParams) (*PasswordHasher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	h := &PasswordHasher{params: p}

	pw := make([]byte, 32)
	if _, err := io.ReadFull(randReader, pw); err != nil {
		return nil, err
	}
	dummy, err := h.Hash(pw)
	if err != nil {
		return nil, err
	}
	h.dummy = dummy
	return h, nil
}

func (h *PasswordHasher) Hash(password []byte) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	sum := argon2.IDKey(password, salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, h.params.KeyLen)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.MemoryKiB, h.params.Time, h.params.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(sum)), nil
}

// Verify reports whether password matches encoded. A malformed hash is an
// error, a mismatch is (false, nil).
func (h *PasswordHasher) Verify(password []byte, encoded string) (bool, error) {
	p, salt, sum, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}
	other := argon2.IDKey(password, salt, p.Time, p.MemoryKiB, p.Threads, uint32(len(sum)))
	return subtle.ConstantTimeCompare(sum, other) == 1, nil
}

// VerifyDummy spends the same work as Verify against a hash nobody knows the
// password of. Used when the account does not exist.
func (h *PasswordHasher) VerifyDummy(password []byte) {
	_, _ = h.Verify(password, h.dummy)
}

// NeedsRehash reports whether encoded was produced with other parameters.
func (h *PasswordHasher) NeedsRehash(encoded string) bool {
	p, salt, sum, err := decodeHash(encoded)
	if err != nil {
		return true
	}
	return p.Time != h.params.Time || p.MemoryKiB != h.params.MemoryKiB || p.Threads != h.params.Threads ||
		uint32(len(salt)) != h.params.SaltLen || uint32(len(sum)) != h.params.KeyLen
}

func decodeHash(encoded string) (HashParams, []byte, []byte, error) {
	var p HashParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, ErrMalformedHash
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &threads); err != nil {
		return p, nil, nil, ErrMalformedHash
	}
	if threads == 0 || threads > 255 || p.Time == 0 {
		return p, nil, nil, ErrMalformedHash
	}
	p.Threads = uint8(threads)

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, ErrMalformedHash
	}
	sum, err := b64.DecodeString(parts[5])
	if err != nil || len(sum) == 0 {
		return p, nil, nil, ErrMalformedHash
	}
	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(sum))
	return p, salt, sum, nil
}
