package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/config"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu      sync.Mutex
	changed []string
}

func (n *recordingNotifier) PasswordChanged(_ context.Context, u *models.User) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, u.ID)
	return nil
}

type harness struct {
	db       *sql.DB
	mock     sqlmock.Sqlmock
	st       *store
	clk      *clock
	cfg      *config.Config
	hasher   *auth.PasswordHasher
	notifier *recordingNotifier

	sessions  *SessionService
	twofactor *TwoFactorService
	auth      *AuthService
	webauthn  *WebAuthnService
	envelopes *EnvelopeService
	admin     *AdminService
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = strings.Repeat("s", 32)
	cfg.TOTPKey = strings.Repeat("t", 32)
	cfg.PasswordHash = auth.HashParams{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 32}
	cfg.MaxFailedLogins = 3
	cfg.WebAuthn.RPID = "vault.example"
	cfg.WebAuthn.RPOrigins = []string{"https://vault.example"}
	return cfg
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, testConfig())
}

func newHarnessWith(t *testing.T, cfg *config.Config) *harness {
	t.Helper()

	db, mock := newSQLMockDB(t)
	st := newStore()
	rm := &fakeRepoManager{s: st}
	clk := &clock{t: time.Now().UTC().Truncate(time.Second)}
	log := logging.Nop()

	hasher, err := auth.NewPasswordHasher(cfg.PasswordHash)
	require.NoError(t, err)

	h := &harness{db: db, mock: mock, st: st, clk: clk, cfg: cfg, hasher: hasher, notifier: &recordingNotifier{}}

	h.sessions = NewSessionService(db, rm, cfg, log)
	h.sessions.now = clk.Now

	h.twofactor, err = NewTwoFactorService(db, rm, hasher, cfg, log)
	require.NoError(t, err)
	h.twofactor.now = clk.Now

	h.auth, err = NewAuthService(db, rm, hasher, h.sessions, h.twofactor, h.notifier, cfg, log)
	require.NoError(t, err)
	h.auth.now = clk.Now

	h.webauthn, err = NewWebAuthnService(db, rm, h.sessions, cfg, log)
	require.NoError(t, err)
	h.webauthn.now = clk.Now

	h.envelopes = NewEnvelopeService(db, rm)
	h.envelopes.now = clk.Now

	h.admin = NewAdminService(db, rm, h.sessions, log)
	return h
}

// authSecret stands in for the HKDF output a real client would send.
func authSecret(pw string) []byte {
	return []byte("client-derived-auth-secret:" + pw)
}

func (h *harness) register(t *testing.T, email, pw string) *models.User {
	t.Helper()
	u, err := h.auth.Register(context.Background(), RegisterInput{
		Name:       "Test User",
		Email:      email,
		AuthSecret: authSecret(pw),
		KDFSalt:    cryptox.NewSalt(),
		KDF:        cryptox.DefaultKDFParams(),
	})
	require.NoError(t, err)
	return u
}
