// Package services holds the CLI's application logic: the account and
// session flow in AuthService and the encrypted item store in VaultService.
// Key material only exists in memory while a session is open.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/eterbox/internal/client/client"
	"github.com/dmitrijs2005/eterbox/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/eterbox/internal/client/vault"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
)

const lastEmailKey = "last_email"

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrNoPendingLogin  = errors.New("no login is waiting for a second factor")
	ErrWrongPassword   = errors.New("current password is wrong")
	ErrGenerationDrift = errors.New("an item is sealed under another key generation")
)

// Session is the unlocked state after a complete login.
type Session struct {
	UserID        string
	Email         string
	Role          string
	SecondFactor  bool
	KeyGeneration int

	keys *vault.Keyring
}

// LoginOutcome tells the caller whether a second factor is still owed.
type LoginOutcome struct {
	SecondFactorRequired bool
	Methods              []string
}

type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) (*LoginOutcome, error)
	VerifySecondFactor(ctx context.Context, code string) error
	ChangePassword(ctx context.Context, current, next []byte) error
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) (int64, error)
	// Forget drops local key material without contacting the server.
	Forget()

	TwoFactorSetup(ctx context.Context) (*client.TwoFactorSetupResponse, error)
	TwoFactorConfirm(ctx context.Context, secret, code string) ([]string, error)
	TwoFactorDisable(ctx context.Context, password []byte) error
	TwoFactorStatus(ctx context.Context) (*client.TwoFactorStatusResponse, error)

	Passkeys(ctx context.Context) ([]client.Passkey, error)
	RemovePasskey(ctx context.Context, id string) error

	Session() *Session
	LastEmail(ctx context.Context) string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type pendingLogin struct {
	email    string
	mfaToken string
	keys     *vault.Keyring
}

type authService struct {
	client   client.Client
	metadata metadata.Repository
	kdf      cryptox.KDFParams

	mu      sync.Mutex
	session *Session
	pending *pendingLogin
}

// NewAuthService builds the account flow. kdf is the work factor used for
// new salts at registration and password change.
func NewAuthService(c client.Client, m metadata.Repository, kdf cryptox.KDFParams) AuthService {
	return &authService{client: c, metadata: m, kdf: kdf}
}

func (a *authService) Register(ctx context.Context, name, email string, password []byte) (string, error) {
	if err := vault.CheckStrength(password, email, name); err != nil {
		return "", err
	}
	keys, err := vault.Fresh(password, a.kdf)
	if err != nil {
		return "", fmt.Errorf("derive keys: %w", err)
	}
	defer keys.Wipe()

	id, err := a.client.Register(ctx, &client.RegisterRequest{
		Name:       name,
		Email:      email,
		AuthSecret: keys.AuthSecret(),
		KDFSalt:    keys.Salt(),
		KDF:        keys.Params(),
	})
	if err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	a.rememberEmail(ctx, email)
	return id, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*LoginOutcome, error) {
	pre, err := a.client.Prelogin(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("prelogin error: %w", err)
	}
	keys, err := vault.Derive(password, pre.Salt, pre.KDF)
	if err != nil {
		return nil, fmt.Errorf("derive keys: %w", err)
	}

	resp, err := a.client.Login(ctx, email, keys.AuthSecret())
	if err != nil {
		keys.Wipe()
		return nil, fmt.Errorf("login error: %w", err)
	}

	a.mu.Lock()
	a.dropLocked()
	if resp.RequiresSecondFactor {
		a.pending = &pendingLogin{email: email, mfaToken: resp.MFAToken, keys: keys}
		a.mu.Unlock()
		return &LoginOutcome{SecondFactorRequired: true, Methods: resp.Methods}, nil
	}
	a.mu.Unlock()

	if err := a.open(ctx, email, keys, resp); err != nil {
		return nil, err
	}
	return &LoginOutcome{}, nil
}

func (a *authService) VerifySecondFactor(ctx context.Context, code string) error {
	a.mu.Lock()
	p := a.pending
	a.mu.Unlock()
	if p == nil {
		return ErrNoPendingLogin
	}

	resp, err := a.client.VerifySecondFactor(ctx, p.mfaToken, code)
	if err != nil {
		// an expired challenge token cannot be retried
		if errors.Is(err, client.ErrUnauthorized) {
			a.mu.Lock()
			if a.pending == p {
				a.pending = nil
				p.keys.Wipe()
			}
			a.mu.Unlock()
		}
		return fmt.Errorf("second factor error: %w", err)
	}

	a.mu.Lock()
	if a.pending == p {
		a.pending = nil
	}
	a.mu.Unlock()
	return a.open(ctx, p.email, p.keys, resp)
}

// open installs the session once the server has issued a token.
func (a *authService) open(ctx context.Context, email string, keys *vault.Keyring, resp *client.LoginResponse) error {
	s := &Session{
		UserID:        resp.UserID,
		Email:         email,
		KeyGeneration: resp.KeyGeneration,
		keys:          keys,
	}
	who, err := a.client.WhoAmI(ctx)
	if err != nil {
		keys.Wipe()
		a.client.SetSessionToken("")
		return fmt.Errorf("whoami error: %w", err)
	}
	s.Role = who.Role
	s.SecondFactor = who.SecondFactor
	if s.UserID == "" {
		s.UserID = who.UserID
	}

	a.mu.Lock()
	a.dropLocked()
	a.session = s
	a.mu.Unlock()

	a.rememberEmail(ctx, email)
	return nil
}

// ChangePassword re-seals every envelope under a key derived from next and
// swaps credentials in one server call. The server revokes every session
// and hands back a new one.
func (a *authService) ChangePassword(ctx context.Context, current, next []byte) error {
	s := a.Session()
	if s == nil {
		return ErrNotLoggedIn
	}

	check, err := vault.Derive(current, s.keys.Salt(), s.keys.Params())
	if err != nil {
		return fmt.Errorf("derive keys: %w", err)
	}
	defer check.Wipe()
	if subtle.ConstantTimeCompare(check.AuthSecret(), s.keys.AuthSecret()) != 1 {
		return ErrWrongPassword
	}
	if err := vault.CheckStrength(next, s.Email); err != nil {
		return err
	}

	nk, err := vault.Fresh(next, a.kdf)
	if err != nil {
		return fmt.Errorf("derive keys: %w", err)
	}

	envs, err := a.client.ListEnvelopes(ctx)
	if err != nil {
		nk.Wipe()
		return fmt.Errorf("list envelopes error: %w", err)
	}
	rekeyed := make([]client.EnvelopeRekey, 0, len(envs))
	for _, e := range envs {
		if e.KeyGeneration != s.KeyGeneration {
			nk.Wipe()
			return fmt.Errorf("%w: envelope %s", ErrGenerationDrift, e.ID)
		}
		payload, err := s.keys.Rekey(e.ID, e.Payload, nk)
		if err != nil {
			nk.Wipe()
			return fmt.Errorf("rekey envelope %s: %w", e.ID, err)
		}
		rekeyed = append(rekeyed, client.EnvelopeRekey{ID: e.ID, Payload: payload})
	}

	_, err = a.client.ChangePassword(ctx, &client.ChangePasswordRequest{
		CurrentAuthSecret:  check.AuthSecret(),
		NewAuthSecret:      nk.AuthSecret(),
		NewKDFSalt:         nk.Salt(),
		NewKDF:             nk.Params(),
		ExpectedGeneration: s.KeyGeneration,
		Envelopes:          rekeyed,
	})
	if err != nil {
		nk.Wipe()
		return fmt.Errorf("change password error: %w", err)
	}

	a.mu.Lock()
	if a.session == s {
		s.keys.Wipe()
		s.keys = nk
		s.KeyGeneration++
	} else {
		nk.Wipe()
	}
	a.mu.Unlock()
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	defer a.Forget()
	if a.client.SessionToken() == "" {
		return nil
	}
	if err := a.client.Logout(ctx); err != nil {
		a.client.SetSessionToken("")
		return fmt.Errorf("logout error: %w", err)
	}
	return nil
}

func (a *authService) LogoutAll(ctx context.Context) (int64, error) {
	if a.Session() == nil {
		return 0, ErrNotLoggedIn
	}
	defer a.Forget()
	n, err := a.client.LogoutAll(ctx)
	if err != nil {
		a.client.SetSessionToken("")
		return 0, fmt.Errorf("logout error: %w", err)
	}
	return n, nil
}

func (a *authService) Forget() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dropLocked()
}

func (a *authService) dropLocked() {
	if a.session != nil {
		a.session.keys.Wipe()
		a.session = nil
	}
	if a.pending != nil {
		a.pending.keys.Wipe()
		a.pending = nil
	}
}

func (a *authService) TwoFactorSetup(ctx context.Context) (*client.TwoFactorSetupResponse, error) {
	if a.Session() == nil {
		return nil, ErrNotLoggedIn
	}
	return a.client.TwoFactorSetup(ctx)
}

func (a *authService) TwoFactorConfirm(ctx context.Context, secret, code string) ([]string, error) {
	if a.Session() == nil {
		return nil, ErrNotLoggedIn
	}
	return a.client.TwoFactorConfirm(ctx, secret, code)
}

// TwoFactorDisable re-derives the auth secret so a stolen session alone
// cannot turn off the second factor.
func (a *authService) TwoFactorDisable(ctx context.Context, password []byte) error {
	s := a.Session()
	if s == nil {
		return ErrNotLoggedIn
	}
	keys, err := vault.Derive(password, s.keys.Salt(), s.keys.Params())
	if err != nil {
		return fmt.Errorf("derive keys: %w", err)
	}
	defer keys.Wipe()
	return a.client.TwoFactorDisable(ctx, keys.AuthSecret())
}

func (a *authService) TwoFactorStatus(ctx context.Context) (*client.TwoFactorStatusResponse, error) {
	if a.Session() == nil {
		return nil, ErrNotLoggedIn
	}
	return a.client.TwoFactorStatus(ctx)
}

func (a *authService) Passkeys(ctx context.Context) ([]client.Passkey, error) {
	if a.Session() == nil {
		return nil, ErrNotLoggedIn
	}
	return a.client.ListPasskeys(ctx)
}

func (a *authService) RemovePasskey(ctx context.Context, id string) error {
	if a.Session() == nil {
		return ErrNotLoggedIn
	}
	return a.client.RemovePasskey(ctx, id)
}

// Session returns nil when nobody is logged in.
func (a *authService) Session() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// LastEmail is the address of the last successful login or registration,
// for prefilling the login prompt.
func (a *authService) LastEmail(ctx context.Context) string {
	v, err := a.metadata.Get(ctx, lastEmailKey)
	if err != nil {
		return ""
	}
	return string(v)
}

func (a *authService) rememberEmail(ctx context.Context, email string) {
	// best effort, the prompt just won't be prefilled
	_ = a.metadata.Set(ctx, lastEmailKey, []byte(email))
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	a.Forget()
	return a.client.Close()
}
