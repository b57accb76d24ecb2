package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/client/client"
	"github.com/dmitrijs2005/eterbox/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var fastKDF = cryptox.KDFParams{Time: 1, MemoryKiB: 19 * 1024, Threads: 1}

const (
	strongPassword = "violet-Harbor-73-glacier-Mint"
	otherPassword  = "amber-Quarry-58-lantern-Fjord"
	totpCode       = "123456"
)

func setupMetadata(t *testing.T) metadata.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return metadata.NewSQLiteRepository(db)
}

type fakeUser struct {
	id         string
	email      string
	authSecret []byte
	salt       []byte
	kdf        cryptox.KDFParams
	generation int
	mfa        bool
}

// fakeServer is a client.Client that keeps one in-memory account store,
// enough to drive the services end to end.
type fakeServer struct {
	users     map[string]*fakeUser
	envelopes map[string]client.Envelope
	token     string
	current   *fakeUser
	issued    int

	listErr     error
	changeErr   error
	logoutErr   error
	lastChange  *client.ChangePasswordRequest
	disabledFor []byte
	logouts     int
}

func newFakeServer() *fakeServer {
	return &fakeServer{users: map[string]*fakeUser{}, envelopes: map[string]client.Envelope{}}
}

func (f *fakeServer) nextToken() string {
	f.issued++
	return fmt.Sprintf("token-%d", f.issued)
}

func (f *fakeServer) Close() error                 { return nil }
func (f *fakeServer) SetSessionToken(token string) { f.token = token }
func (f *fakeServer) SessionToken() string         { return f.token }
func (f *fakeServer) Ping(context.Context) error   { return nil }

func (f *fakeServer) Prelogin(_ context.Context, email string) (*client.PreloginResponse, error) {
	if u, ok := f.users[email]; ok {
		return &client.PreloginResponse{Salt: u.salt, KDF: u.kdf}, nil
	}
	return &client.PreloginResponse{Salt: bytes.Repeat([]byte{9}, cryptox.SaltLen), KDF: fastKDF}, nil
}

func (f *fakeServer) Register(_ context.Context, req *client.RegisterRequest) (string, error) {
	if _, ok := f.users[req.Email]; ok {
		return "", client.ErrAlreadyExists
	}
	u := &fakeUser{
		id:         fmt.Sprintf("u%d", len(f.users)+1),
		email:      req.Email,
		authSecret: append([]byte(nil), req.AuthSecret...),
		salt:       req.KDFSalt,
		kdf:        req.KDF,
		generation: 1,
	}
	f.users[req.Email] = u
	return u.id, nil
}

func (f *fakeServer) Login(_ context.Context, email string, authSecret []byte) (*client.LoginResponse, error) {
	u, ok := f.users[email]
	if !ok || !bytes.Equal(u.authSecret, authSecret) {
		return nil, client.ErrUnauthorized
	}
	f.current = u
	if u.mfa {
		return &client.LoginResponse{RequiresSecondFactor: true, MFAToken: "mfa-" + u.id, Methods: []string{"totp"}}, nil
	}
	f.token = f.nextToken()
	return &client.LoginResponse{SessionToken: f.token, UserID: u.id, KeyGeneration: u.generation}, nil
}

func (f *fakeServer) VerifySecondFactor(_ context.Context, mfaToken, code string) (*client.LoginResponse, error) {
	if f.current == nil || mfaToken != "mfa-"+f.current.id {
		return nil, client.ErrUnauthorized
	}
	if code != totpCode {
		return nil, client.ErrInvalidArgument
	}
	f.token = f.nextToken()
	return &client.LoginResponse{SessionToken: f.token, UserID: f.current.id, KeyGeneration: f.current.generation}, nil
}

func (f *fakeServer) WhoAmI(context.Context) (*client.WhoAmIResponse, error) {
	if f.token == "" {
		return nil, client.ErrUnauthorized
	}
	return &client.WhoAmIResponse{UserID: f.current.id, Role: "user", SecondFactor: f.current.mfa}, nil
}

func (f *fakeServer) ChangePassword(_ context.Context, req *client.ChangePasswordRequest) (*client.SessionResponse, error) {
	f.lastChange = req
	if f.changeErr != nil {
		return nil, f.changeErr
	}
	u := f.current
	if !bytes.Equal(u.authSecret, req.CurrentAuthSecret) {
		return nil, client.ErrUnauthorized
	}
	if req.ExpectedGeneration != u.generation || len(req.Envelopes) != len(f.envelopes) {
		return nil, client.ErrVaultChanged
	}
	u.generation++
	for _, r := range req.Envelopes {
		e, ok := f.envelopes[r.ID]
		if !ok {
			return nil, client.ErrVaultChanged
		}
		e.Payload = r.Payload
		e.KeyGeneration = u.generation
		f.envelopes[r.ID] = e
	}
	u.authSecret = append([]byte(nil), req.NewAuthSecret...)
	u.salt = req.NewKDFSalt
	u.kdf = req.NewKDF
	f.token = f.nextToken()
	return &client.SessionResponse{SessionToken: f.token, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeServer) Logout(context.Context) error {
	f.logouts++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.token = ""
	return nil
}

func (f *fakeServer) LogoutAll(context.Context) (int64, error) {
	f.logouts++
	f.token = ""
	return 3, nil
}

func (f *fakeServer) TwoFactorSetup(context.Context) (*client.TwoFactorSetupResponse, error) {
	return &client.TwoFactorSetupResponse{Secret: "JBSWY3DPEHPK3PXP", URI: "otpauth://totp/EterBox"}, nil
}

func (f *fakeServer) TwoFactorConfirm(_ context.Context, _, code string) ([]string, error) {
	if code != totpCode {
		return nil, client.ErrInvalidArgument
	}
	f.current.mfa = true
	return []string{"aaaaa-bbbbb", "ccccc-ddddd"}, nil
}

func (f *fakeServer) TwoFactorDisable(_ context.Context, authSecret []byte) error {
	f.disabledFor = append([]byte(nil), authSecret...)
	if !bytes.Equal(f.current.authSecret, authSecret) {
		return client.ErrUnauthorized
	}
	f.current.mfa = false
	return nil
}

func (f *fakeServer) TwoFactorStatus(context.Context) (*client.TwoFactorStatusResponse, error) {
	return &client.TwoFactorStatusResponse{Enabled: f.current.mfa}, nil
}

func (f *fakeServer) ListPasskeys(context.Context) ([]client.Passkey, error) {
	return []client.Passkey{{ID: "pk1", Name: "laptop"}}, nil
}

func (f *fakeServer) RemovePasskey(_ context.Context, id string) error {
	if id != "pk1" {
		return client.ErrNotFound
	}
	return nil
}

func (f *fakeServer) ListEnvelopes(context.Context) ([]client.Envelope, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]client.Envelope, 0, len(f.envelopes))
	for _, e := range f.envelopes {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeServer) SaveEnvelope(_ context.Context, e client.Envelope) (*client.Envelope, error) {
	if e.KeyGeneration != f.current.generation {
		return nil, client.ErrVaultChanged
	}
	e.UpdatedAt = time.Now()
	f.envelopes[e.ID] = e
	return &e, nil
}

func (f *fakeServer) DeleteEnvelope(_ context.Context, id string) error {
	if _, ok := f.envelopes[id]; !ok {
		return client.ErrNotFound
	}
	delete(f.envelopes, id)
	return nil
}

func (f *fakeServer) AdminListLoginAttempts(context.Context, string, int) ([]client.LoginAttempt, error) {
	return nil, nil
}

func (f *fakeServer) AdminRevokeUser(context.Context, string) (int64, error) {
	return 0, nil
}

// registered returns a service with alice registered but not logged in.
func registered(t *testing.T) (*fakeServer, AuthService) {
	t.Helper()
	srv := newFakeServer()
	svc := NewAuthService(srv, setupMetadata(t), fastKDF)
	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", []byte(strongPassword))
	require.NoError(t, err)
	return srv, svc
}

func loggedIn(t *testing.T) (*fakeServer, AuthService) {
	t.Helper()
	srv, svc := registered(t)
	out, err := svc.Login(context.Background(), "alice@example.com", []byte(strongPassword))
	require.NoError(t, err)
	require.False(t, out.SecondFactorRequired)
	return srv, svc
}
