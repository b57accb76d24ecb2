package client

import "context"

// Client is the server API as the CLI services see it. Every call after a
// successful login carries the session token set with SetSessionToken.
type Client interface {
	Close() error
	SetSessionToken(token string)
	SessionToken() string

	Ping(ctx context.Context) error
	Prelogin(ctx context.Context, email string) (*PreloginResponse, error)
	Register(ctx context.Context, req *RegisterRequest) (string, error)
	Login(ctx context.Context, email string, authSecret []byte) (*LoginResponse, error)
	VerifySecondFactor(ctx context.Context, mfaToken, code string) (*LoginResponse, error)
	WhoAmI(ctx context.Context) (*WhoAmIResponse, error)
	ChangePassword(ctx context.Context, req *ChangePasswordRequest) (*SessionResponse, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) (int64, error)

	TwoFactorSetup(ctx context.Context) (*TwoFactorSetupResponse, error)
	TwoFactorConfirm(ctx context.Context, secret, code string) ([]string, error)
	TwoFactorDisable(ctx context.Context, authSecret []byte) error
	TwoFactorStatus(ctx context.Context) (*TwoFactorStatusResponse, error)

	ListPasskeys(ctx context.Context) ([]Passkey, error)
	RemovePasskey(ctx context.Context, id string) error

	ListEnvelopes(ctx context.Context) ([]Envelope, error)
	SaveEnvelope(ctx context.Context, e Envelope) (*Envelope, error)
	DeleteEnvelope(ctx context.Context, id string) error

	AdminListLoginAttempts(ctx context.Context, email string, limit int) ([]LoginAttempt, error)
	AdminRevokeUser(ctx context.Context, userID string) (int64, error)
}
