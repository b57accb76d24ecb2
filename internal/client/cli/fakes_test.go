package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/client/client"
	"github.com/dmitrijs2005/eterbox/internal/client/config"
	"github.com/dmitrijs2005/eterbox/internal/client/inactivity"
	"github.com/dmitrijs2005/eterbox/internal/client/services"
	"github.com/dmitrijs2005/eterbox/internal/client/vault"
	"github.com/dmitrijs2005/eterbox/internal/logging"
)

type fakeAuth struct {
	mu        sync.Mutex
	session   *services.Session
	needMFA   bool
	loginErr  error
	verifyErr error
	logoutErr error

	password   string
	gotEmail   string
	gotCode    string
	logouts    int
	changed    [2]string
	registered []string
	lastEmail  string
	disabled   string
	onLogout   func()
}

func (f *fakeAuth) Register(_ context.Context, name, email string, password []byte) (string, error) {
	f.registered = append(f.registered, name, email, string(password))
	return "u1", nil
}

func (f *fakeAuth) Login(_ context.Context, email string, password []byte) (*services.LoginOutcome, error) {
	f.gotEmail = email
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if string(password) != f.password {
		return nil, client.ErrUnauthorized
	}
	if f.needMFA {
		return &services.LoginOutcome{SecondFactorRequired: true, Methods: []string{"totp"}}, nil
	}
	f.open(email)
	return &services.LoginOutcome{}, nil
}

func (f *fakeAuth) open(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = &services.Session{UserID: "u1", Email: email, Role: "user", SecondFactor: f.needMFA, KeyGeneration: 1}
}

func (f *fakeAuth) VerifySecondFactor(_ context.Context, code string) error {
	f.gotCode = code
	if f.verifyErr != nil {
		return f.verifyErr
	}
	f.open(f.gotEmail)
	return nil
}

func (f *fakeAuth) ChangePassword(_ context.Context, current, next []byte) error {
	f.changed = [2]string{string(current), string(next)}
	return nil
}

func (f *fakeAuth) Logout(context.Context) error {
	if f.onLogout != nil {
		f.onLogout()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	f.session = nil
	return f.logoutErr
}

func (f *fakeAuth) LogoutAll(context.Context) (int64, error) {
	f.Forget()
	return 4, nil
}

func (f *fakeAuth) Forget() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = nil
}

func (f *fakeAuth) TwoFactorSetup(context.Context) (*client.TwoFactorSetupResponse, error) {
	return &client.TwoFactorSetupResponse{Secret: "SECRET", URI: "otpauth://totp/x"}, nil
}

func (f *fakeAuth) TwoFactorConfirm(_ context.Context, _, code string) ([]string, error) {
	f.gotCode = code
	return []string{"code-1", "code-2"}, nil
}

func (f *fakeAuth) TwoFactorDisable(_ context.Context, password []byte) error {
	f.disabled = string(password)
	return nil
}

func (f *fakeAuth) TwoFactorStatus(context.Context) (*client.TwoFactorStatusResponse, error) {
	return &client.TwoFactorStatusResponse{Enabled: true, BackupCodesLeft: 7}, nil
}

func (f *fakeAuth) Passkeys(context.Context) ([]client.Passkey, error) {
	return []client.Passkey{{ID: "pk1", Name: "laptop", Flagged: true}}, nil
}

func (f *fakeAuth) RemovePasskey(context.Context, string) error { return client.ErrNotFound }

func (f *fakeAuth) Session() *services.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeAuth) LastEmail(context.Context) string { return f.lastEmail }
func (f *fakeAuth) Ping(context.Context) error       { return nil }
func (f *fakeAuth) Close(context.Context) error      { return nil }

type fakeVault struct {
	added []vault.Item
	items map[string]vault.Item
}

func (f *fakeVault) List(context.Context) ([]services.Entry, error) {
	return []services.Entry{{ID: "e1", Name: "bank", URL: "https://bank.example"}}, nil
}

func (f *fakeVault) Add(_ context.Context, name, url string, item *vault.Item) (string, error) {
	f.added = append(f.added, *item)
	return "e2", nil
}

func (f *fakeVault) Show(_ context.Context, id string) (*services.Entry, *vault.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil, client.ErrNotFound
	}
	return &services.Entry{ID: id, Name: "bank"}, &item, nil
}

func (f *fakeVault) Delete(context.Context, string) error { return nil }

type fakeAdmin struct {
	revoked string
}

func (f *fakeAdmin) AdminListLoginAttempts(context.Context, string, int) ([]client.LoginAttempt, error) {
	return []client.LoginAttempt{{Email: "x@example.com", Success: false, Reason: "bad_credentials", CreatedAt: time.Unix(0, 0)}}, nil
}

func (f *fakeAdmin) AdminRevokeUser(_ context.Context, id string) (int64, error) {
	f.revoked = id
	return 2, nil
}

// manualClock never ticks on its own; tests call Monitor.Tick.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *manualClock) NewTicker(time.Duration) inactivity.Ticker { return idleTicker{} }

type idleTicker struct{}

func (idleTicker) C() <-chan time.Time { return nil }
func (idleTicker) Stop()               {}

type harness struct {
	app   *App
	auth  *fakeAuth
	vault *fakeVault
	admin *fakeAdmin
	clock *manualClock
	out   *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	h := &harness{
		auth:  &fakeAuth{password: "pw"},
		vault: &fakeVault{items: map[string]vault.Item{}},
		admin: &fakeAdmin{},
		clock: &manualClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		out:   &bytes.Buffer{},
	}
	h.app = newApp(cfg, h.auth, h.vault, h.admin, h.clock, logging.Nop(), strings.NewReader(""), h.out)
	h.app.gate.SetUnauthenticated()
	t.Cleanup(h.app.stopMonitor)
	return h
}

// answers replaces the prompt seams with canned input.
func answers(t *testing.T, text []string, passwords []string) {
	t.Helper()
	oldText, oldPw, oldMulti := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() { getSimpleText, getPassword, getMultiline = oldText, oldPw, oldMulti })

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(text) == 0 {
			return "", io.EOF
		}
		v := text[0]
		text = text[1:]
		return v, nil
	}
	getMultiline = getSimpleText
	getPassword = func(string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
}
