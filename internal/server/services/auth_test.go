package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/otpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sealed(t *testing.T, key byte, plaintext string) []byte {
	t.Helper()
	env, err := cryptox.Seal(bytes.Repeat([]byte{key}, cryptox.KeySize), []byte(plaintext), nil)
	require.NoError(t, err)
	b, err := env.MarshalBinary()
	require.NoError(t, err)
	return b
}

func (h *harness) lastAttempt() *models.LoginAttempt {
	h.st.mu.Lock()
	defer h.st.mu.Unlock()
	if len(h.st.attempts) == 0 {
		return nil
	}
	return h.st.attempts[len(h.st.attempts)-1]
}

func TestPrelogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")

	res, err := h.auth.Prelogin(ctx, "Alice@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, u.KDFSalt, res.Salt)
	assert.Equal(t, u.KDF, res.KDF)

	d1, err := h.auth.Prelogin(ctx, "ghost@example.com")
	require.NoError(t, err)
	d2, err := h.auth.Prelogin(ctx, "GHOST@example.com")
	require.NoError(t, err)
	d3, err := h.auth.Prelogin(ctx, "phantom@example.com")
	require.NoError(t, err)

	assert.Len(t, d1.Salt, cryptox.SaltLen)
	assert.Equal(t, d1.Salt, d2.Salt)
	assert.NotEqual(t, d1.Salt, d3.Salt)
	assert.Equal(t, h.cfg.ClientKDF, d1.KDF)
}

func TestPrelogin_DecoyDependsOnServerSecret(t *testing.T) {
	a := newHarness(t)
	cfg := testConfig()
	cfg.SecretKey = "another-secret-key-of-32-bytes!!"
	b := newHarnessWith(t, cfg)

	ra, err := a.auth.Prelogin(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	rb, err := b.auth.Prelogin(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, ra.Salt, rb.Salt)
}

func TestRegister(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	valid := RegisterInput{
		Name:       "Alice",
		Email:      " Alice@Example.com",
		AuthSecret: authSecret("pw"),
		KDFSalt:    cryptox.NewSalt(),
		KDF:        cryptox.DefaultKDFParams(),
	}

	u, err := h.auth.Register(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, guard.RoleUser, u.Role)
	assert.Equal(t, 1, u.KeyGeneration)
	assert.Len(t, u.WebAuthnHandle, 32)
	assert.Contains(t, u.PasswordHash, "$argon2id$")
	assert.NotContains(t, u.PasswordHash, string(valid.AuthSecret))

	_, err = h.auth.Register(ctx, valid)
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	tests := []struct {
		name   string
		mutate func(in *RegisterInput)
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "" }},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"short secret", func(in *RegisterInput) { in.AuthSecret = []byte("short") }},
		{"short salt", func(in *RegisterInput) { in.KDFSalt = []byte{1, 2, 3} }},
		{"weak kdf", func(in *RegisterInput) { in.KDF = cryptox.KDFParams{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			in.Email = "bob@example.com"
			tt.mutate(&in)
			_, err := h.auth.Register(ctx, in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrorValidation), "got %v", err)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")

	res, err := h.auth.Login(ctx, "alice@example.com", authSecret("pw"), "10.0.0.1")
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	assert.False(t, res.RequiresSecondFactor)
	assert.Equal(t, u.ID, res.UserID)

	claims, err := h.sessions.Validate(ctx, res.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)

	a := h.lastAttempt()
	assert.True(t, a.Success)
	assert.Equal(t, "10.0.0.1", a.RemoteAddr)
	assert.NotNil(t, h.st.users[u.ID].LastSignedIn)
}

func TestLogin_RehashesOutdatedHash(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")
	weak := h.st.users[u.ID].PasswordHash

	stronger := h.cfg.PasswordHash
	stronger.Time = 2
	hasher, err := auth.NewPasswordHasher(stronger)
	require.NoError(t, err)
	require.True(t, hasher.NeedsRehash(weak))
	h.auth.hasher = hasher

	_, err = h.auth.Login(ctx, u.Email, authSecret("pw"), "")
	require.NoError(t, err)

	upgraded := h.st.users[u.ID].PasswordHash
	assert.NotEqual(t, weak, upgraded)
	assert.False(t, hasher.NeedsRehash(upgraded))
	ok, err := hasher.Verify(authSecret("pw"), upgraded)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = h.auth.Login(ctx, u.Email, authSecret("pw"), "")
	require.NoError(t, err)
	assert.Equal(t, upgraded, h.st.users[u.ID].PasswordHash)
}

func TestLogin_RehashFailureDoesNotBlockLogin(t *testing.T) {
	h := newHarness(t)
	u := h.register(t, "alice@example.com", "pw")
	weak := h.st.users[u.ID].PasswordHash

	stronger := h.cfg.PasswordHash
	stronger.MemoryKiB = 2048
	hasher, err := auth.NewPasswordHasher(stronger)
	require.NoError(t, err)
	h.auth.hasher = hasher
	h.st.errs["users.UpdatePasswordHash"] = errors.New("read only")

	res, err := h.auth.Login(context.Background(), u.Email, authSecret("pw"), "")
	require.NoError(t, err)
	assert.NotNil(t, res.Session)
	assert.Equal(t, weak, h.st.users[u.ID].PasswordHash)
}

func TestLogin_FailuresLookAlike(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "alice@example.com", "pw")

	_, errWrong := h.auth.Login(ctx, "alice@example.com", authSecret("nope"), "")
	require.ErrorIs(t, errWrong, common.ErrInvalidCredentials)
	assert.Equal(t, reasonBadPassword, h.lastAttempt().Reason)

	_, errUnknown := h.auth.Login(ctx, "ghost@example.com", authSecret("pw"), "")
	require.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	assert.Equal(t, reasonUnknownEmail, h.lastAttempt().Reason)

	assert.Equal(t, errWrong.Error(), errUnknown.Error())
	assert.Empty(t, h.st.sessions)
}

func TestLogin_Throttled(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "alice@example.com", "pw")

	for i := 0; i < h.cfg.MaxFailedLogins; i++ {
		_, err := h.auth.Login(ctx, "alice@example.com", authSecret("nope"), "")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	}

	_, err := h.auth.Login(ctx, "alice@example.com", authSecret("pw"), "")
	require.ErrorIs(t, err, common.ErrTooManyAttempts)
	assert.Equal(t, reasonThrottled, h.lastAttempt().Reason)

	// other accounts are unaffected
	h.register(t, "bob@example.com", "pw")
	_, err = h.auth.Login(ctx, "bob@example.com", authSecret("pw"), "")
	require.NoError(t, err)

	h.clk.Advance(h.cfg.FailedLoginWindow + time.Second)
	_, err = h.auth.Login(ctx, "alice@example.com", authSecret("pw"), "")
	require.NoError(t, err)
}

func TestLogin_StoreFailure(t *testing.T) {
	h := newHarness(t)
	h.st.errs["users.GetByEmail"] = errors.New("connection reset")

	_, err := h.auth.Login(context.Background(), "alice@example.com", authSecret("pw"), "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_SecondFactorFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")
	secret, _ := h.enroll(t, u.ID)
	sessionsBefore := len(h.st.sessions)

	res, err := h.auth.Login(ctx, "alice@example.com", authSecret("pw"), "")
	require.NoError(t, err)
	assert.True(t, res.RequiresSecondFactor)
	assert.Nil(t, res.Session)
	assert.NotEmpty(t, res.MFAToken)
	assert.Equal(t, []string{MethodTOTP, MethodBackupCode}, res.Methods)
	assert.Len(t, h.st.sessions, sessionsBefore)

	h.clk.Advance(otpx.Period * time.Second)
	done, err := h.auth.VerifySecondFactor(ctx, res.MFAToken, h.code(t, secret), "")
	require.NoError(t, err)
	require.NotNil(t, done.Session)

	claims, err := h.sessions.Validate(ctx, done.Session.Token)
	require.NoError(t, err)
	assert.True(t, claims.MFA)

	// the MFA token is single use
	_, err = h.auth.VerifySecondFactor(ctx, res.MFAToken, h.code(t, secret), "")
	require.ErrorIs(t, err, common.ErrChallengeNotFound)
}

func TestLogin_SecondFactorWithBackupCode(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")
	_, codes := h.enroll(t, u.ID)

	res, err := h.auth.Login(ctx, "alice@example.com", authSecret("pw"), "")
	require.NoError(t, err)

	done, err := h.auth.VerifySecondFactor(ctx, res.MFAToken, codes[3], "")
	require.NoError(t, err)
	assert.NotNil(t, done.Session)

	res, err = h.auth.Login(ctx, "alice@example.com", authSecret("pw"), "")
	require.NoError(t, err)
	_, err = h.auth.VerifySecondFactor(ctx, res.MFAToken, codes[3], "")
	require.ErrorIs(t, err, common.ErrInvalidSecondFactor)
}

func TestLogin_SecondFactorAttemptLimit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")
	secret, _ := h.enroll(t, u.ID)
	h.clk.Advance(otpx.Period * time.Second)

	res, err := h.auth.Login(ctx, "alice@example.com", authSecret("pw"), "")
	require.NoError(t, err)

	wrong := "000000"
	if h.code(t, secret) == wrong {
		wrong = "111111"
	}
	for i := 0; i < h.cfg.MFAMaxAttempts; i++ {
		_, err := h.auth.VerifySecondFactor(ctx, res.MFAToken, wrong, "")
		require.ErrorIs(t, err, common.ErrInvalidSecondFactor)
	}

	_, err = h.auth.VerifySecondFactor(ctx, res.MFAToken, h.code(t, secret), "")
	require.ErrorIs(t, err, common.ErrTooManyAttempts)
	assert.NotContains(t, h.st.challenges, res.MFAToken)
}

func TestLogin_SecondFactorTokenExpires(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")
	secret, _ := h.enroll(t, u.ID)

	res, err := h.auth.Login(ctx, "alice@example.com", authSecret("pw"), "")
	require.NoError(t, err)

	h.clk.Advance(h.cfg.MFATokenTTL)
	_, err = h.auth.VerifySecondFactor(ctx, res.MFAToken, h.code(t, secret), "")
	require.ErrorIs(t, err, common.ErrChallengeExpired)
	assert.NotContains(t, h.st.challenges, res.MFAToken)
}

func TestVerifySecondFactor_UnknownToken(t *testing.T) {
	h := newHarness(t)
	_, err := h.auth.VerifySecondFactor(context.Background(), "no-such-token", "123456", "")
	require.ErrorIs(t, err, common.ErrChallengeNotFound)
}

// --- password change ---

type rekeyFixture struct {
	h       *harness
	user    *models.User
	session *SessionToken
	ids     []string
}

func newRekeyFixture(t *testing.T) *rekeyFixture {
	h := newHarness(t)
	u := h.register(t, "alice@example.com", "pw")

	ids := []string{"env-1", "env-2"}
	for _, id := range ids {
		h.st.envelopes[id] = &models.VaultEnvelope{
			ID: id, UserID: u.ID, DisplayName: id, Payload: sealed(t, 1, id), KeyGeneration: 1,
		}
	}

	res, err := h.auth.Login(context.Background(), u.Email, authSecret("pw"), "")
	require.NoError(t, err)
	return &rekeyFixture{h: h, user: u, session: res.Session, ids: ids}
}

func (f *rekeyFixture) principal() guard.Principal {
	return guard.Principal{UserID: f.user.ID, SessionID: f.session.SessionID, Role: guard.RoleUser}
}

func (f *rekeyFixture) input(t *testing.T, ids ...string) ChangePasswordInput {
	in := ChangePasswordInput{
		CurrentAuthSecret: authSecret("pw"),
		NewAuthSecret:     authSecret("new-pw"),
		NewKDFSalt:        cryptox.NewSalt(),
		NewKDF:            cryptox.DefaultKDFParams(),
	}
	for _, id := range ids {
		in.Envelopes = append(in.Envelopes, EnvelopeRekey{ID: id, Payload: sealed(t, 2, id)})
	}
	return in
}

func TestChangePassword_Success(t *testing.T) {
	f := newRekeyFixture(t)
	h := f.h
	ctx := context.Background()
	in := f.input(t, f.ids...)

	h.mock.ExpectBegin()
	h.mock.ExpectCommit()
	tok, err := h.auth.ChangePassword(ctx, f.principal(), in)
	require.NoError(t, err)
	require.NoError(t, h.mock.ExpectationsWereMet())

	_, err = h.sessions.Validate(ctx, f.session.Token)
	require.ErrorIs(t, err, common.ErrSessionRevoked)
	_, err = h.sessions.Validate(ctx, tok.Token)
	require.NoError(t, err)

	u := h.st.users[f.user.ID]
	assert.Equal(t, 2, u.KeyGeneration)
	assert.Equal(t, in.NewKDFSalt, u.KDFSalt)
	for _, e := range in.Envelopes {
		stored := h.st.envelopes[e.ID]
		assert.Equal(t, e.Payload, stored.Payload)
		assert.Equal(t, 2, stored.KeyGeneration)
	}
	assert.Equal(t, []string{f.user.ID}, h.notifier.changed)

	_, err = h.auth.Login(ctx, f.user.Email, authSecret("pw"), "")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = h.auth.Login(ctx, f.user.Email, authSecret("new-pw"), "")
	require.NoError(t, err)
}

func TestChangePassword_WithTOTPKeepsSecondFactor(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")
	h.enroll(t, u.ID)

	p := guard.Principal{UserID: u.ID, Role: guard.RoleUser}
	in := ChangePasswordInput{
		CurrentAuthSecret: authSecret("pw"),
		NewAuthSecret:     authSecret("new-pw"),
		NewKDFSalt:        cryptox.NewSalt(),
		NewKDF:            cryptox.DefaultKDFParams(),
	}

	h.mock.ExpectBegin()
	h.mock.ExpectCommit()
	tok, err := h.auth.ChangePassword(ctx, p, in)
	require.NoError(t, err)

	claims, err := h.sessions.Validate(ctx, tok.Token)
	require.NoError(t, err)
	assert.True(t, claims.MFA)
}

func TestChangePassword_IncompleteRekey(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{"missing envelope", []string{"env-1"}},
		{"unknown envelope", []string{"env-1", "env-3"}},
		{"duplicate envelope", []string{"env-1", "env-1"}},
		{"extra envelope", []string{"env-1", "env-2", "env-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRekeyFixture(t)
			h := f.h

			h.mock.ExpectBegin()
			h.mock.ExpectRollback()
			_, err := h.auth.ChangePassword(context.Background(), f.principal(), f.input(t, tt.ids...))
			require.ErrorIs(t, err, common.ErrRekeyIncomplete)
			require.NoError(t, h.mock.ExpectationsWereMet())

			assert.Equal(t, 1, h.st.users[f.user.ID].KeyGeneration)
			assert.Equal(t, 1, h.st.envelopes["env-1"].KeyGeneration)
			assert.Empty(t, h.notifier.changed)

			_, err = h.sessions.Validate(context.Background(), f.session.Token)
			require.NoError(t, err)
		})
	}
}

func TestChangePassword_StaleGeneration(t *testing.T) {
	f := newRekeyFixture(t)
	h := f.h
	in := f.input(t, f.ids...)
	in.ExpectedGeneration = 7

	h.mock.ExpectBegin()
	h.mock.ExpectRollback()
	_, err := h.auth.ChangePassword(context.Background(), f.principal(), in)
	require.ErrorIs(t, err, common.ErrRekeyIncomplete)
	assert.Equal(t, 1, h.st.users[f.user.ID].KeyGeneration)
}

func TestChangePassword_SeesEnvelopeSavedBeforeLock(t *testing.T) {
	f := newRekeyFixture(t)
	h := f.h

	// A save that committed while the rekey waited for the user row.
	h.st.hooks["users.LockGeneration"] = func() {
		h.st.mu.Lock()
		h.st.envelopes["env-3"] = &models.VaultEnvelope{ID: "env-3", UserID: f.user.ID, Payload: sealed(t, 1, "late"), KeyGeneration: 1}
		h.st.mu.Unlock()
	}

	h.mock.ExpectBegin()
	h.mock.ExpectRollback()
	_, err := h.auth.ChangePassword(context.Background(), f.principal(), f.input(t, f.ids...))
	require.ErrorIs(t, err, common.ErrRekeyIncomplete)
	require.NoError(t, h.mock.ExpectationsWereMet())

	assert.Equal(t, 1, h.st.users[f.user.ID].KeyGeneration)
	assert.Equal(t, 1, h.st.envelopes["env-3"].KeyGeneration)
	assert.Empty(t, h.notifier.changed)
}

func TestChangePassword_WriteFailureRollsBack(t *testing.T) {
	f := newRekeyFixture(t)
	h := f.h
	boom := errors.New("disk full")
	h.st.errs["envelopes.UpdatePayload"] = boom

	h.mock.ExpectBegin()
	h.mock.ExpectRollback()
	_, err := h.auth.ChangePassword(context.Background(), f.principal(), f.input(t, f.ids...))
	require.ErrorIs(t, err, boom)
	require.NoError(t, h.mock.ExpectationsWereMet())
	assert.Empty(t, h.notifier.changed)
}

func TestChangePassword_RejectsBeforeTransaction(t *testing.T) {
	f := newRekeyFixture(t)
	h := f.h
	ctx := context.Background()

	in := f.input(t, f.ids...)
	in.CurrentAuthSecret = authSecret("wrong")
	_, err := h.auth.ChangePassword(ctx, f.principal(), in)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	in = f.input(t, f.ids...)
	in.Envelopes[0].Payload = []byte("plaintext")
	_, err = h.auth.ChangePassword(ctx, f.principal(), in)
	require.ErrorIs(t, err, common.ErrorValidation)

	in = f.input(t, f.ids...)
	in.NewAuthSecret = []byte("short")
	_, err = h.auth.ChangePassword(ctx, f.principal(), in)
	require.ErrorIs(t, err, common.ErrorValidation)

	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u := h.register(t, "alice@example.com", "pw")

	a, err := h.auth.Login(ctx, u.Email, authSecret("pw"), "")
	require.NoError(t, err)
	b, err := h.auth.Login(ctx, u.Email, authSecret("pw"), "")
	require.NoError(t, err)

	require.NoError(t, h.auth.Logout(ctx, a.Session.SessionID))
	_, err = h.sessions.Validate(ctx, a.Session.Token)
	require.ErrorIs(t, err, common.ErrSessionRevoked)
	_, err = h.sessions.Validate(ctx, b.Session.Token)
	require.NoError(t, err)

	n, err := h.auth.LogoutAll(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
