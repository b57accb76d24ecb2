package vault

import (
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
)

// Item is the plaintext of one vault entry.
type Item struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Seal encrypts item under the vault key. The envelope id is bound as
// associated data so a payload cannot be moved to another entry.
func (k *Keyring) Seal(id string, item *Item) ([]byte, error) {
	env, err := cryptox.SealJSON(k.vaultKey, item, []byte(id))
	if err != nil {
		return nil, err
	}
	return env.MarshalBinary()
}

// Open fails with common.ErrDecryptionFailed for a wrong key, a tampered
// payload or a payload belonging to another id.
func (k *Keyring) Open(id string, payload []byte) (*Item, error) {
	env, err := cryptox.ParseEnvelope(payload)
	if err != nil {
		return nil, err
	}
	var item Item
	if err := cryptox.OpenJSON(env, k.vaultKey, []byte(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Rekey re-seals a payload from k to next without exposing the plaintext
// to the caller.
func (k *Keyring) Rekey(id string, payload []byte, next *Keyring) ([]byte, error) {
	env, err := cryptox.ParseEnvelope(payload)
	if err != nil {
		return nil, err
	}
	out, err := cryptox.Rekey(env, k.vaultKey, next.vaultKey, []byte(id))
	if err != nil {
		return nil, err
	}
	return out.MarshalBinary()
}
