package services

import (
	"bytes"
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/envelopes"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/loginattempts"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/passkeys"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/twofactor"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

// store is an in-memory database shared by the fake repositories. It keeps
// the conditional-update semantics of the SQL implementations.
type store struct {
	mu         sync.Mutex
	users      map[string]*models.User
	sessions   map[string]*models.Session
	totp       map[string]*models.TOTPSecret
	backup     map[string][]*models.BackupCode
	passkeys   map[string]*models.WebAuthnCredential
	challenges map[string]*models.Challenge
	envelopes  map[string]*models.VaultEnvelope
	attempts   []*models.LoginAttempt
	errs       map[string]error
	hooks      map[string]func()
}

func newStore() *store {
	return &store{
		users:      map[string]*models.User{},
		sessions:   map[string]*models.Session{},
		totp:       map[string]*models.TOTPSecret{},
		backup:     map[string][]*models.BackupCode{},
		passkeys:   map[string]*models.WebAuthnCredential{},
		challenges: map[string]*models.Challenge{},
		envelopes:  map[string]*models.VaultEnvelope{},
		errs:       map[string]error{},
		hooks:      map[string]func(){},
	}
}

func (s *store) fail(op string) error { return s.errs[op] }

// before runs the hook registered for op, standing in for a concurrent
// writer that commits just ahead of it. Hooks run without s.mu held.
func (s *store) before(op string) {
	if h := s.hooks[op]; h != nil {
		h()
	}
}

type fakeRepoManager struct{ s *store }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error       { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                     { return fakeUsers{m.s} }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository               { return fakeSessions{m.s} }
func (m *fakeRepoManager) TwoFactor(dbx.DBTX) twofactor.Repository             { return fakeTwoFactor{m.s} }
func (m *fakeRepoManager) Passkeys(dbx.DBTX) passkeys.Repository               { return fakePasskeys{m.s} }
func (m *fakeRepoManager) Challenges(dbx.DBTX) challenges.Repository           { return fakeChallenges{m.s} }
func (m *fakeRepoManager) Envelopes(dbx.DBTX) envelopes.Repository             { return fakeEnvelopes{m.s} }
func (m *fakeRepoManager) LoginAttempts(dbx.DBTX) loginattempts.Repository     { return fakeAttempts{m.s} }

// --- users ---

type fakeUsers struct{ s *store }

func (f fakeUsers) Create(_ context.Context, u *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.fail("users.Create"); err != nil {
		return err
	}
	for _, x := range f.s.users {
		if x.Email == u.Email {
			return common.ErrorAlreadyExists
		}
	}
	c := *u
	f.s.users[u.ID] = &c
	return nil
}

func (f fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.fail("users.GetByEmail"); err != nil {
		return nil, err
	}
	for _, u := range f.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) GetByWebAuthnHandle(_ context.Context, handle []byte) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if bytes.Equal(u.WebAuthnHandle, handle) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) LockGeneration(_ context.Context, id string) (int, error) {
	f.s.before("users.LockGeneration")
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return u.KeyGeneration, nil
}

func (f fakeUsers) UpdatePasswordHash(_ context.Context, id, old, hash string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.fail("users.UpdatePasswordHash"); err != nil {
		return err
	}
	u, ok := f.s.users[id]
	if !ok || u.PasswordHash != old {
		return common.ErrorNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f fakeUsers) UpdateCredentials(_ context.Context, id, hash string, salt []byte, kdf cryptox.KDFParams, expected int) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok || u.KeyGeneration != expected {
		return 0, common.ErrorNotFound
	}
	u.PasswordHash, u.KDFSalt, u.KDF = hash, salt, kdf
	u.KeyGeneration++
	return u.KeyGeneration, nil
}

func (f fakeUsers) TouchLastSignedIn(_ context.Context, id string, at time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if u, ok := f.s.users[id]; ok {
		u.LastSignedIn = &at
	}
	return nil
}

// --- sessions ---

type fakeSessions struct{ s *store }

func (f fakeSessions) Create(_ context.Context, sess *models.Session) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.fail("sessions.Create"); err != nil {
		return err
	}
	c := *sess
	f.s.sessions[sess.ID] = &c
	return nil
}

func (f fakeSessions) Get(_ context.Context, id string) (*models.Session, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	sess, ok := f.s.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *sess
	return &c, nil
}

func (f fakeSessions) Revoke(_ context.Context, id string, at time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	sess, ok := f.s.sessions[id]
	if !ok || sess.RevokedAt != nil {
		return common.ErrorNotFound
	}
	sess.RevokedAt = &at
	return nil
}

func (f fakeSessions) RevokeAllForUser(_ context.Context, userID string, at time.Time) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var n int64
	for _, sess := range f.s.sessions {
		if sess.UserID == userID && sess.RevokedAt == nil {
			sess.RevokedAt = &at
			n++
		}
	}
	return n, nil
}

func (f fakeSessions) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var n int64
	for id, sess := range f.s.sessions {
		if sess.ExpiresAt.Before(before) {
			delete(f.s.sessions, id)
			n++
		}
	}
	return n, nil
}

// --- two factor ---

type fakeTwoFactor struct{ s *store }

func (f fakeTwoFactor) Get(_ context.Context, userID string) (*models.TOTPSecret, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.fail("twofactor.Get"); err != nil {
		return nil, err
	}
	t, ok := f.s.totp[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (f fakeTwoFactor) SavePending(_ context.Context, userID string, ct []byte, at time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	t, ok := f.s.totp[userID]
	if !ok {
		f.s.totp[userID] = &models.TOTPSecret{UserID: userID, State: models.TOTPPending, PendingCiphertext: ct, IssuedAt: at}
		return nil
	}
	t.PendingCiphertext, t.IssuedAt = ct, at
	if t.State != models.TOTPActive {
		t.State = models.TOTPPending
	}
	return nil
}

func (f fakeTwoFactor) Activate(_ context.Context, userID string, step int64, at time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	t, ok := f.s.totp[userID]
	if !ok || t.PendingCiphertext == nil {
		return common.ErrorNotFound
	}
	t.SecretCiphertext, t.PendingCiphertext = t.PendingCiphertext, nil
	t.State, t.ConfirmedAt, t.LastUsedStep = models.TOTPActive, &at, step
	return nil
}

func (f fakeTwoFactor) AdvanceStep(_ context.Context, userID string, step int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	t, ok := f.s.totp[userID]
	if !ok || t.State != models.TOTPActive || t.LastUsedStep >= step {
		return common.ErrorNotFound
	}
	t.LastUsedStep = step
	return nil
}

func (f fakeTwoFactor) Disable(_ context.Context, userID string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	t, ok := f.s.totp[userID]
	if !ok {
		return common.ErrorNotFound
	}
	t.State, t.SecretCiphertext, t.PendingCiphertext = models.TOTPDisabled, nil, nil
	return nil
}

func (f fakeTwoFactor) ReplaceBackupCodes(_ context.Context, userID string, codes []*models.BackupCode) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.backup[userID] = append([]*models.BackupCode(nil), codes...)
	return nil
}

func (f fakeTwoFactor) ConsumeBackupCode(_ context.Context, userID string, hash []byte, at time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, c := range f.s.backup[userID] {
		if bytes.Equal(c.CodeHash, hash) && c.UsedAt == nil {
			c.UsedAt = &at
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f fakeTwoFactor) CountUnusedBackupCodes(_ context.Context, userID string) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	n := 0
	for _, c := range f.s.backup[userID] {
		if c.UsedAt == nil {
			n++
		}
	}
	return n, nil
}

func (f fakeTwoFactor) DeleteBackupCodes(_ context.Context, userID string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.backup, userID)
	return nil
}

// --- passkeys ---

type fakePasskeys struct{ s *store }

func (f fakePasskeys) Create(_ context.Context, c *models.WebAuthnCredential) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, x := range f.s.passkeys {
		if bytes.Equal(x.CredentialID, c.CredentialID) {
			return common.ErrorAlreadyExists
		}
	}
	cp := *c
	f.s.passkeys[c.ID] = &cp
	return nil
}

func (f fakePasskeys) ListByUser(_ context.Context, userID string) ([]*models.WebAuthnCredential, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []*models.WebAuthnCredential
	for _, c := range f.s.passkeys {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakePasskeys) GetByCredentialID(_ context.Context, id []byte) (*models.WebAuthnCredential, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, c := range f.s.passkeys {
		if bytes.Equal(c.CredentialID, id) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakePasskeys) UpdateSignCount(_ context.Context, id string, prev, next uint32, backupState bool, at time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.passkeys[id]
	if !ok || c.FlaggedAt != nil || c.SignCount != prev {
		return common.ErrorNotFound
	}
	c.SignCount, c.BackupState, c.LastUsedAt = next, backupState, &at
	return nil
}

func (f fakePasskeys) Flag(_ context.Context, id string, at time.Time) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.passkeys[id]
	if !ok || c.FlaggedAt != nil {
		return common.ErrorNotFound
	}
	c.FlaggedAt = &at
	return nil
}

func (f fakePasskeys) Delete(_ context.Context, userID, id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.passkeys[id]
	if !ok || c.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.s.passkeys, id)
	return nil
}

// --- challenges ---

type fakeChallenges struct{ s *store }

func (f fakeChallenges) Create(_ context.Context, c *models.Challenge) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *c
	f.s.challenges[c.ID] = &cp
	return nil
}

func (f fakeChallenges) Get(_ context.Context, id string, kind models.ChallengeKind) (*models.Challenge, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.challenges[id]
	if !ok || c.Kind != kind {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f fakeChallenges) Consume(_ context.Context, id string, kind models.ChallengeKind) (*models.Challenge, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.challenges[id]
	if !ok || c.Kind != kind {
		return nil, common.ErrorNotFound
	}
	delete(f.s.challenges, id)
	return c, nil
}

func (f fakeChallenges) ConsumeOwned(_ context.Context, id string, kind models.ChallengeKind, userID string) (*models.Challenge, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.challenges[id]
	if !ok || c.Kind != kind || c.UserID != userID {
		return nil, common.ErrorNotFound
	}
	delete(f.s.challenges, id)
	return c, nil
}

func (f fakeChallenges) IncrementAttempts(_ context.Context, id string) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.challenges[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	c.Attempts++
	return c.Attempts, nil
}

func (f fakeChallenges) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var n int64
	for id, c := range f.s.challenges {
		if c.Expired(now) {
			delete(f.s.challenges, id)
			n++
		}
	}
	return n, nil
}

// --- envelopes ---

type fakeEnvelopes struct{ s *store }

func (f fakeEnvelopes) ListByUser(_ context.Context, userID string) ([]*models.VaultEnvelope, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []*models.VaultEnvelope
	for _, e := range f.s.envelopes {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeEnvelopes) ListIDs(ctx context.Context, userID string) ([]string, error) {
	list, _ := f.ListByUser(ctx, userID)
	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ID)
	}
	return ids, nil
}

func (f fakeEnvelopes) Upsert(_ context.Context, e *models.VaultEnvelope) error {
	f.s.before("envelopes.Upsert")
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[e.UserID]
	if !ok {
		return common.ErrorNotFound
	}
	if u.KeyGeneration != e.KeyGeneration {
		return common.ErrStaleGeneration
	}
	if old, ok := f.s.envelopes[e.ID]; ok && old.UserID != e.UserID {
		return common.ErrorNotFound
	}
	cp := *e
	f.s.envelopes[e.ID] = &cp
	return nil
}

func (f fakeEnvelopes) UpdatePayload(_ context.Context, userID, id string, payload []byte, gen int) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if err := f.s.fail("envelopes.UpdatePayload"); err != nil {
		return err
	}
	e, ok := f.s.envelopes[id]
	if !ok || e.UserID != userID {
		return common.ErrorNotFound
	}
	e.Payload, e.KeyGeneration = payload, gen
	return nil
}

func (f fakeEnvelopes) Delete(_ context.Context, userID, id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	e, ok := f.s.envelopes[id]
	if !ok || e.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.s.envelopes, id)
	return nil
}

// --- login attempts ---

type fakeAttempts struct{ s *store }

func (f fakeAttempts) Record(_ context.Context, a *models.LoginAttempt) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	cp := *a
	cp.ID = int64(len(f.s.attempts) + 1)
	f.s.attempts = append(f.s.attempts, &cp)
	return nil
}

func (f fakeAttempts) CountFailuresSince(_ context.Context, email string, since time.Time) (int, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	n := 0
	for _, a := range f.s.attempts {
		if a.Email == email && !a.Success && !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f fakeAttempts) List(_ context.Context, email string, limit int) ([]*models.LoginAttempt, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []*models.LoginAttempt
	for i := len(f.s.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		if email == "" || f.s.attempts[i].Email == email {
			out = append(out, f.s.attempts[i])
		}
	}
	return out, nil
}

func (f fakeAttempts) DeleteBefore(_ context.Context, before time.Time) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	kept := f.s.attempts[:0]
	var n int64
	for _, a := range f.s.attempts {
		if a.CreatedAt.Before(before) {
			n++
			continue
		}
		kept = append(kept, a)
	}
	f.s.attempts = kept
	return n, nil
}

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// clock is a settable time source for services.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
