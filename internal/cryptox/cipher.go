package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrijs2005/eterbox/internal/common"
)

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes", common.ErrorValidation, KeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// boundAAD prefixes the caller's associated data with the envelope version,
// so a downgrade of the version byte breaks authentication.
func boundAAD(version byte, aad []byte) []byte {
	out := make([]byte, 0, 1+len(aad))
	out = append(out, version)
	return append(out, aad...)
}

// Seal encrypts plaintext under key with a fresh random nonce. aad is
// authenticated but not encrypted (typically the envelope id and owner).
func Seal(key, plaintext, aad []byte) (*Envelope, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	return &Envelope{
		Version:    EnvelopeV1,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, plaintext, boundAAD(EnvelopeV1, aad)),
	}, nil
}

// Open authenticates and decrypts env. Any failure (wrong key, wrong aad,
// modified bytes, unsupported version) yields ErrDecryptionFailed and no
// plaintext.
func Open(env *Envelope, key, aad []byte) ([]byte, error) {
	if env == nil || env.Version != EnvelopeV1 || len(env.Nonce) != NonceSize {
		return nil, common.ErrDecryptionFailed
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, boundAAD(env.Version, aad))
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	return plaintext, nil
}

// Rekey opens env with oldKey and seals the plaintext under newKey with a
// new nonce. The intermediate plaintext is wiped.
func Rekey(env *Envelope, oldKey, newKey, aad []byte) (*Envelope, error) {
	plaintext, err := Open(env, oldKey, aad)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(plaintext)
	return Seal(newKey, plaintext, aad)
}

// SealJSON marshals v and seals it.
func SealJSON(key []byte, v any, aad []byte) (*Envelope, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(plaintext)
	return Seal(key, plaintext, aad)
}

// OpenJSON opens env and unmarshals the plaintext into v.
func OpenJSON(env *Envelope, key, aad []byte, v any) error {
	plaintext, err := Open(env, key, aad)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(plaintext)
	return json.Unmarshal(plaintext, v)
}
