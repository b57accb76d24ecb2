// Package vault holds the client's key material and seals vault items into
// envelopes. The server only ever sees the auth secret and sealed bytes.
package vault

import (
	"fmt"

	"github.com/dmitrijs2005/eterbox/internal/cryptox"
)

// Keyring is what the master password unlocks. Wipe it when the session
// ends.
type Keyring struct {
	vaultKey   cryptox.Secret
	authSecret cryptox.Secret
	salt       []byte
	params     cryptox.KDFParams
}

// Derive stretches password with the account's KDF salt and parameters.
func Derive(password, salt []byte, p cryptox.KDFParams) (*Keyring, error) {
	mk, err := cryptox.DeriveMasterKey(password, salt, p)
	if err != nil {
		return nil, err
	}
	defer mk.Wipe()

	vk, as, err := mk.Split()
	if err != nil {
		return nil, fmt.Errorf("split master key: %w", err)
	}
	return &Keyring{vaultKey: vk, authSecret: as, salt: append([]byte(nil), salt...), params: p}, nil
}

// Fresh derives a keyring under a new random salt, for registration and
// password changes.
func Fresh(password []byte, p cryptox.KDFParams) (*Keyring, error) {
	return Derive(password, cryptox.NewSalt(), p)
}

// AuthSecret is sent to the server in place of the password.
func (k *Keyring) AuthSecret() []byte { return k.authSecret }

func (k *Keyring) Salt() []byte { return k.salt }

func (k *Keyring) Params() cryptox.KDFParams { return k.params }

func (k *Keyring) Wipe() {
	if k == nil {
		return
	}
	k.vaultKey.Zero()
	k.authSecret.Zero()
}
