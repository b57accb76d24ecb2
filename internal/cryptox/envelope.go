package cryptox

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/eterbox/internal/common"
)

const (
	// EnvelopeV1 is AES-256-GCM with a 96-bit random nonce.
	EnvelopeV1 byte = 1

	NonceSize = 12
	TagSize   = 16

	textPrefix = "eb1."
)

// Envelope is the stored form of one encrypted credential:
//
//	version(1) | nonce(12) | ciphertext | tag(16)
//
// Ciphertext carries the GCM tag at its end. The server stores envelopes as
// opaque bytes and never holds a key that opens them.
type Envelope struct {
	Version    byte
	Nonce      []byte
	Ciphertext []byte
}

func (e *Envelope) MarshalBinary() ([]byte, error) {
	if e.Version != EnvelopeV1 || len(e.Nonce) != NonceSize || len(e.Ciphertext) < TagSize {
		return nil, fmt.Errorf("%w: malformed envelope", common.ErrorValidation)
	}
	out := make([]byte, 0, 1+NonceSize+len(e.Ciphertext))
	out = append(out, e.Version)
	out = append(out, e.Nonce...)
	out = append(out, e.Ciphertext...)
	return out, nil
}

// UnmarshalBinary parses b. Unknown versions and truncated input report
// ErrDecryptionFailed so callers see a single failure kind.
func (e *Envelope) UnmarshalBinary(b []byte) error {
	if len(b) < 1+NonceSize+TagSize {
		return fmt.Errorf("%w: envelope truncated", common.ErrDecryptionFailed)
	}
	if b[0] != EnvelopeV1 {
		return fmt.Errorf("%w: unsupported envelope version %d", common.ErrDecryptionFailed, b[0])
	}
	e.Version = b[0]
	e.Nonce = append([]byte(nil), b[1:1+NonceSize]...)
	e.Ciphertext = append([]byte(nil), b[1+NonceSize:]...)
	return nil
}

// String returns the text form "eb1.<base64url>".
func (e *Envelope) String() string {
	b, err := e.MarshalBinary()
	if err != nil {
		return ""
	}
	return textPrefix + base64.RawURLEncoding.EncodeToString(b)
}

func (e *Envelope) MarshalText() ([]byte, error) {
	b, err := e.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return []byte(textPrefix + base64.RawURLEncoding.EncodeToString(b)), nil
}

func (e *Envelope) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, textPrefix) {
		return fmt.Errorf("%w: unknown envelope encoding", common.ErrDecryptionFailed)
	}
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(s, textPrefix))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}
	return e.UnmarshalBinary(b)
}

// ParseEnvelope decodes the binary form.
func ParseEnvelope(b []byte) (*Envelope, error) {
	e := &Envelope{}
	if err := e.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return e, nil
}
