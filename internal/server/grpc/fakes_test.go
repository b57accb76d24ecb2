package grpc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/services"
	"github.com/golang-jwt/jwt/v5"
)

type fakeSessions struct {
	claims map[string]*auth.Claims
	err    error
}

func (f *fakeSessions) Validate(_ context.Context, token string) (*auth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.claims[token]
	if !ok {
		return nil, common.ErrInvalidToken
	}
	return c, nil
}

func claimsFor(userID, sessionID string, role guard.Role) *auth.Claims {
	return &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ID: sessionID, Subject: userID},
		Role:             role,
	}
}

type fakeAuth struct {
	registered services.RegisterInput
	loginRes   *services.LoginResult
	loginErr   error
	remote     string
	principal  guard.Principal
	rekey      services.ChangePasswordInput
	loggedOut  string
}

func (f *fakeAuth) Prelogin(_ context.Context, email string) (*services.PreloginResult, error) {
	return &services.PreloginResult{Salt: []byte(email)}, nil
}

func (f *fakeAuth) Register(_ context.Context, in services.RegisterInput) (*models.User, error) {
	f.registered = in
	if in.Email == "taken@example.com" {
		return nil, common.ErrorAlreadyExists
	}
	return &models.User{ID: "new-user"}, nil
}

func (f *fakeAuth) Login(_ context.Context, _ string, _ []byte, remote string) (*services.LoginResult, error) {
	f.remote = remote
	return f.loginRes, f.loginErr
}

func (f *fakeAuth) VerifySecondFactor(context.Context, string, string, string) (*services.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeAuth) ChangePassword(_ context.Context, p guard.Principal, in services.ChangePasswordInput) (*services.SessionToken, error) {
	f.principal, f.rekey = p, in
	return &services.SessionToken{Token: "fresh", SessionID: "s2", ExpiresAt: time.Unix(2000000000, 0).UTC()}, nil
}

func (f *fakeAuth) Logout(_ context.Context, sessionID string) error {
	f.loggedOut = sessionID
	return nil
}

func (f *fakeAuth) LogoutAll(context.Context, string) (int64, error) { return 3, nil }

type fakeTwoFactor struct{ confirmErr error }

func (f *fakeTwoFactor) BeginEnrollment(context.Context, string) (*services.Enrollment, error) {
	return &services.Enrollment{Secret: "SECRET", URI: "otpauth://totp/x"}, nil
}

func (f *fakeTwoFactor) ConfirmEnrollment(context.Context, string, string, string) ([]string, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return []string{"AAAAA-BBBBB"}, nil
}

func (f *fakeTwoFactor) Disable(context.Context, string, []byte) error { return nil }

func (f *fakeTwoFactor) Status(context.Context, string) (*services.TwoFactorStatus, error) {
	return &services.TwoFactorStatus{Enabled: true, State: models.TOTPActive, BackupCodesLeft: 7}, nil
}

type fakeWebAuthn struct{}

func (fakeWebAuthn) BeginRegistration(context.Context, string) (*services.Ceremony, error) {
	return &services.Ceremony{ChallengeID: "c1", Options: json.RawMessage(`{"publicKey":{}}`)}, nil
}

func (fakeWebAuthn) FinishRegistration(_ context.Context, userID, _, name string, _ []byte) (*models.WebAuthnCredential, error) {
	return &models.WebAuthnCredential{ID: "pk1", UserID: userID, Name: name}, nil
}

func (fakeWebAuthn) BeginLogin(context.Context, string) (*services.Ceremony, error) {
	return &services.Ceremony{ChallengeID: "c2", Options: json.RawMessage(`{}`)}, nil
}

func (fakeWebAuthn) FinishLogin(context.Context, string, []byte, string) (*services.LoginResult, error) {
	return nil, common.ErrCloneDetected
}

func (fakeWebAuthn) ListCredentials(context.Context, string) ([]*models.WebAuthnCredential, error) {
	now := time.Now()
	return []*models.WebAuthnCredential{{ID: "pk1", Name: "laptop", FlaggedAt: &now}}, nil
}

func (fakeWebAuthn) RemoveCredential(context.Context, string, string) error { return common.ErrorNotFound }

type fakeEnvelopes struct{ saved *models.VaultEnvelope }

func (f *fakeEnvelopes) List(_ context.Context, userID string) ([]*models.VaultEnvelope, error) {
	return []*models.VaultEnvelope{{ID: "e1", UserID: userID, Payload: []byte{1}, KeyGeneration: 1}}, nil
}

func (f *fakeEnvelopes) Save(_ context.Context, userID string, e *models.VaultEnvelope) (*models.VaultEnvelope, error) {
	out := *e
	out.UserID = userID
	if out.ID == "" {
		out.ID = "generated"
	}
	f.saved = &out
	return &out, nil
}

func (f *fakeEnvelopes) Delete(context.Context, string, string) error { return nil }

type fakeAdmin struct{ revokedBy string }

func (f *fakeAdmin) ListLoginAttempts(_ context.Context, email string, _ int) ([]*models.LoginAttempt, error) {
	return []*models.LoginAttempt{{ID: 1, Email: email, Reason: "bad_password"}}, nil
}

func (f *fakeAdmin) RevokeUser(_ context.Context, adminID, _ string) (int64, error) {
	f.revokedBy = adminID
	return 2, nil
}

type testDeps struct {
	sessions  *fakeSessions
	auth      *fakeAuth
	twofactor *fakeTwoFactor
	envelopes *fakeEnvelopes
	admin     *fakeAdmin
}

func newTestServer() (*GRPCServer, *testDeps) {
	d := &testDeps{
		sessions: &fakeSessions{claims: map[string]*auth.Claims{
			"user-token":  claimsFor("u1", "s1", guard.RoleUser),
			"admin-token": claimsFor("a1", "s9", guard.RoleAdmin),
		}},
		auth:      &fakeAuth{},
		twofactor: &fakeTwoFactor{},
		envelopes: &fakeEnvelopes{},
		admin:     &fakeAdmin{},
	}
	srv := NewGRPCServer("127.0.0.1:0", logging.Nop(), Services{
		Auth:      d.auth,
		Sessions:  d.sessions,
		TwoFactor: d.twofactor,
		WebAuthn:  fakeWebAuthn{},
		Envelopes: d.envelopes,
		Admin:     d.admin,
	})
	return srv, d
}
