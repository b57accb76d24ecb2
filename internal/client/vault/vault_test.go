package vault

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = cryptox.KDFParams{Time: 1, MemoryKiB: 19 * 1024, Threads: 1}

var testSalt = bytes.Repeat([]byte{7}, cryptox.SaltLen)

func derive(t *testing.T, pw string) *Keyring {
	t.Helper()
	k, err := Derive([]byte(pw), testSalt, testParams)
	require.NoError(t, err)
	return k
}

func TestDerive_Deterministic(t *testing.T) {
	a, b := derive(t, "correct horse"), derive(t, "correct horse")
	assert.Equal(t, a.AuthSecret(), b.AuthSecret())
	assert.NotEqual(t, []byte(a.vaultKey), a.AuthSecret())
	assert.NotEqual(t, a.AuthSecret(), derive(t, "correct horse!").AuthSecret())
	assert.Equal(t, testSalt, a.Salt())
	assert.Equal(t, testParams, a.Params())
}

func TestDerive_RejectsBadInput(t *testing.T) {
	_, err := Derive(nil, testSalt, testParams)
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, err = Derive([]byte("pw"), []byte("short"), testParams)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestFresh_UsesNewSalt(t *testing.T) {
	a, err := Fresh([]byte("pw"), testParams)
	require.NoError(t, err)
	b, err := Fresh([]byte("pw"), testParams)
	require.NoError(t, err)
	assert.NotEqual(t, a.Salt(), b.Salt())
	assert.NotEqual(t, a.AuthSecret(), b.AuthSecret())
}

func TestSealOpen(t *testing.T) {
	k := derive(t, "pw")
	item := &Item{Username: "alice", Password: "s3cret", Notes: "bank"}

	payload, err := k.Seal("e1", item)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "s3cret")

	got, err := k.Open("e1", payload)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestOpen_FailsClosed(t *testing.T) {
	k := derive(t, "pw")
	payload, err := k.Seal("e1", &Item{Password: "x"})
	require.NoError(t, err)

	_, err = derive(t, "other").Open("e1", payload)
	assert.ErrorIs(t, err, common.ErrDecryptionFailed)

	_, err = k.Open("e2", payload)
	assert.ErrorIs(t, err, common.ErrDecryptionFailed)

	tampered := append([]byte(nil), payload...)
	tampered[len(tampered)-1] ^= 1
	_, err = k.Open("e1", tampered)
	assert.ErrorIs(t, err, common.ErrDecryptionFailed)
}

func TestRekey(t *testing.T) {
	old, next := derive(t, "old"), derive(t, "new")
	payload, err := old.Seal("e1", &Item{Password: "x"})
	require.NoError(t, err)

	moved, err := old.Rekey("e1", payload, next)
	require.NoError(t, err)

	got, err := next.Open("e1", moved)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Password)

	_, err = old.Open("e1", moved)
	assert.ErrorIs(t, err, common.ErrDecryptionFailed)

	_, err = next.Rekey("e1", payload, old)
	assert.ErrorIs(t, err, common.ErrDecryptionFailed)
}

func TestWipe(t *testing.T) {
	k := derive(t, "pw")
	k.Wipe()
	assert.Equal(t, make([]byte, cryptox.KeySize), k.AuthSecret())
	var nilRing *Keyring
	assert.NotPanics(t, nilRing.Wipe)
}

func TestCheckStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		inputs   []string
		ok       bool
	}{
		{"common word", "password", nil, false},
		{"keyboard walk", "qwerty123", nil, false},
		{"long random passphrase", "violet-Harbor-73-glacier-Mint", nil, true},
		{"built from the account name", "alicesmith1990", []string{"alicesmith1990", "alice@example.com"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStrength([]byte(tt.password), tt.inputs...)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}
