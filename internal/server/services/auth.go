package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/config"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Second factor methods offered after a password check.
const (
	MethodTOTP       = "totp"
	MethodBackupCode = "backup_code"
)

// Internal failure kinds recorded in the audit trail. They never reach the
// caller, who only sees ErrInvalidCredentials or ErrInvalidSecondFactor.
const (
	reasonUnknownEmail    = "unknown_email"
	reasonBadPassword     = "bad_password"
	reasonThrottled       = "throttled"
	reasonBadSecondFactor = "bad_second_factor"
	reasonPasskey         = "passkey"
)

const minAuthSecretLen = 16

// PreloginResult holds what a client needs to derive its keys.
type PreloginResult struct {
	Salt []byte
	KDF  cryptox.KDFParams
}

type RegisterInput struct {
	Name       string
	Email      string
	AuthSecret []byte
	KDFSalt    []byte
	KDF        cryptox.KDFParams
}

// LoginResult is either a session or a demand for a second factor bound to
// MFAToken.
type LoginResult struct {
	Session              *SessionToken
	RequiresSecondFactor bool
	UserID               string
	MFAToken             string
	Methods              []string
	KeyGeneration        int
}

// EnvelopeRekey is one re-encrypted envelope supplied by the client.
type EnvelopeRekey struct {
	ID      string
	Payload []byte
}

// ChangePasswordInput carries the new key material. The client re-encrypts
// every envelope under its new vault key; the server swaps everything in one
// transaction or nothing.
type ChangePasswordInput struct {
	CurrentAuthSecret  []byte
	NewAuthSecret      []byte
	NewKDFSalt         []byte
	NewKDF             cryptox.KDFParams
	ExpectedGeneration int
	Envelopes          []EnvelopeRekey
}

// AuthService implements the primary factor: prelogin, registration,
// password login with optional second step, password change and logout.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	sessions    *SessionService
	twofactor   *TwoFactorService
	notifier    Notifier
	decoyKey    cryptox.Secret
	kdf         cryptox.KDFParams

	mfaTTL          time.Duration
	mfaMaxAttempts  int
	maxFailedLogins int
	failedWindow    time.Duration

	now func() time.Time
	log logging.Logger
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, h *auth.PasswordHasher, sessions *SessionService,
	twofactor *TwoFactorService, n Notifier, cfg *config.Config, l logging.Logger) (*AuthService, error) {

	decoyKey, err := cryptox.DeriveSubkey([]byte(cfg.SecretKey), decoySaltInfo, nil, cryptox.KeySize)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		db:              db,
		repomanager:     m,
		hasher:          h,
		sessions:        sessions,
		twofactor:       twofactor,
		notifier:        n,
		decoyKey:        decoyKey,
		kdf:             cfg.ClientKDF,
		mfaTTL:          cfg.MFATokenTTL,
		mfaMaxAttempts:  cfg.MFAMaxAttempts,
		maxFailedLogins: cfg.MaxFailedLogins,
		failedWindow:    cfg.FailedLoginWindow,
		now:             time.Now,
		log:             l.With("module", "auth"),
	}, nil
}

// decoySalt is stable per email so repeated prelogins for an unknown
// account look like a real one.
func (s *AuthService) decoySalt(email string) []byte {
	mac := hmac.New(sha256.New, s.decoyKey)
	mac.Write([]byte(email))
	return mac.Sum(nil)[:cryptox.SaltLen]
}

// Prelogin returns the KDF salt and parameters for email. Unknown emails get
// a deterministic decoy with the default parameters.
func (s *AuthService) Prelogin(ctx context.Context, email string) (*PreloginResult, error) {
	email = normalizeEmail(email)

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &PreloginResult{Salt: s.decoySalt(email), KDF: s.kdf}, nil
		}
		return nil, err
	}
	return &PreloginResult{Salt: user.KDFSalt, KDF: user.KDF}, nil
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := normalizeEmail(in.Email)
	switch {
	case in.Name == "":
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	case !validEmail(email):
		return nil, fmt.Errorf("%w: invalid email", common.ErrorValidation)
	case len(in.AuthSecret) < minAuthSecretLen:
		return nil, fmt.Errorf("%w: auth secret too short", common.ErrorValidation)
	case len(in.KDFSalt) < cryptox.SaltLen:
		return nil, fmt.Errorf("%w: kdf salt too short", common.ErrorValidation)
	}
	if err := in.KDF.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.AuthSecret)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		Name:           in.Name,
		Role:           guard.RoleUser,
		PasswordHash:   hash,
		KDFSalt:        in.KDFSalt,
		KDF:            in.KDF,
		KeyGeneration:  1,
		WebAuthnHandle: common.GenerateRandByteArray(32),
		CreatedAt:      s.now(),
	}
	if err := s.repomanager.Users(s.db).Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) recordAttempt(ctx context.Context, userID, email string, success bool, reason, remote string) {
	a := &models.LoginAttempt{
		UserID:     userID,
		Email:      email,
		Success:    success,
		Reason:     reason,
		RemoteAddr: remote,
		CreatedAt:  s.now(),
	}
	if err := s.repomanager.LoginAttempts(s.db).Record(ctx, a); err != nil {
		s.log.Error(ctx, "record login attempt", "error", err)
	}
	if !success {
		s.log.Warn(ctx, "login failed", "email", email, "kind", reason, "remote", remote)
	}
}

// Login checks the auth secret. With TOTP enrolled no session is issued;
// the result carries an MFA token for VerifySecondFactor instead.
func (s *AuthService) Login(ctx context.Context, email string, authSecret []byte, remote string) (*LoginResult, error) {
	email = normalizeEmail(email)

	failures, err := s.repomanager.LoginAttempts(s.db).CountFailuresSince(ctx, email, s.now().Add(-s.failedWindow))
	if err != nil {
		return nil, err
	}
	if failures >= s.maxFailedLogins {
		s.recordAttempt(ctx, "", email, false, reasonThrottled, remote)
		return nil, common.ErrTooManyAttempts
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.VerifyDummy(authSecret)
			s.recordAttempt(ctx, "", email, false, reasonUnknownEmail, remote)
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(authSecret, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.recordAttempt(ctx, user.ID, email, false, reasonBadPassword, remote)
		return nil, common.ErrInvalidCredentials
	}
	if s.hasher.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(ctx, user, authSecret)
	}

	enrolled, err := totpEnrolled(ctx, s.repomanager, s.db, user.ID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		ch := &models.Challenge{
			ID:        uuid.NewString(),
			Kind:      models.ChallengeMFALogin,
			UserID:    user.ID,
			Payload:   []byte("{}"),
			ExpiresAt: s.now().Add(s.mfaTTL),
		}
		if err := s.repomanager.Challenges(s.db).Create(ctx, ch); err != nil {
			return nil, err
		}
		return &LoginResult{
			RequiresSecondFactor: true,
			UserID:               user.ID,
			MFAToken:             ch.ID,
			Methods:              []string{MethodTOTP, MethodBackupCode},
		}, nil
	}

	return s.completeLogin(ctx, user, false, "", remote)
}

// upgradeHash re-hashes a verified secret under the current parameters. A
// failure is logged and the login goes on with the old hash.
func (s *AuthService) upgradeHash(ctx context.Context, user *models.User, authSecret []byte) {
	hash, err := s.hasher.Hash(authSecret)
	if err != nil {
		s.log.Error(ctx, "password rehash", "user_id", user.ID, "error", err)
		return
	}
	err = s.repomanager.Users(s.db).UpdatePasswordHash(ctx, user.ID, user.PasswordHash, hash)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.log.Info(ctx, "password rehash skipped, hash changed concurrently", "user_id", user.ID)
	case err != nil:
		s.log.Error(ctx, "password rehash", "user_id", user.ID, "error", err)
	default:
		user.PasswordHash = hash
		s.log.Info(ctx, "password hash upgraded", "user_id", user.ID)
	}
}

func (s *AuthService) completeLogin(ctx context.Context, user *models.User, secondFactor bool, reason, remote string) (*LoginResult, error) {
	tok, err := s.sessions.Issue(ctx, user, secondFactor)
	if err != nil {
		return nil, err
	}
	if err := s.repomanager.Users(s.db).TouchLastSignedIn(ctx, user.ID, s.now()); err != nil {
		s.log.Error(ctx, "touch last signed in", "error", err)
	}
	s.recordAttempt(ctx, user.ID, user.Email, true, reason, remote)
	return &LoginResult{Session: tok, UserID: user.ID, KeyGeneration: user.KeyGeneration}, nil
}

// VerifySecondFactor finishes a login started by Login. code is either a
// current TOTP code or a backup code. The MFA token survives wrong codes up
// to the attempt limit and is consumed on success.
func (s *AuthService) VerifySecondFactor(ctx context.Context, mfaToken, code, remote string) (*LoginResult, error) {
	chRepo := s.repomanager.Challenges(s.db)

	ch, err := chRepo.Get(ctx, mfaToken, models.ChallengeMFALogin)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrChallengeNotFound
		}
		return nil, err
	}
	if ch.Expired(s.now()) {
		_, _ = chRepo.Consume(ctx, ch.ID, models.ChallengeMFALogin)
		return nil, common.ErrChallengeExpired
	}

	attempts, err := chRepo.IncrementAttempts(ctx, ch.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrChallengeNotFound
		}
		return nil, err
	}
	if attempts > s.mfaMaxAttempts {
		_, _ = chRepo.Consume(ctx, ch.ID, models.ChallengeMFALogin)
		return nil, common.ErrTooManyAttempts
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, ch.UserID)
	if err != nil {
		return nil, err
	}

	if looksLikeBackupCode(code) {
		err = s.twofactor.VerifyBackupCode(ctx, user.ID, code)
	} else {
		err = s.twofactor.Verify(ctx, user.ID, code)
	}
	if err != nil {
		if errors.Is(err, common.ErrInvalidSecondFactor) {
			s.recordAttempt(ctx, user.ID, user.Email, false, reasonBadSecondFactor, remote)
		}
		return nil, err
	}

	if _, err := chRepo.Consume(ctx, ch.ID, models.ChallengeMFALogin); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrChallengeNotFound
		}
		return nil, err
	}

	return s.completeLogin(ctx, user, true, "", remote)
}

// ChangePassword replaces the auth secret, the KDF inputs and every vault
// envelope at once, then ends all sessions and returns a fresh one for the
// caller. The request must cover exactly the envelopes stored for the user.
func (s *AuthService) ChangePassword(ctx context.Context, p guard.Principal, in ChangePasswordInput) (*SessionToken, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	ok, err := s.hasher.Verify(in.CurrentAuthSecret, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.log.Warn(ctx, "password change rejected", "user_id", user.ID, "kind", reasonBadPassword)
		return nil, common.ErrInvalidCredentials
	}

	switch {
	case len(in.NewAuthSecret) < minAuthSecretLen:
		return nil, fmt.Errorf("%w: auth secret too short", common.ErrorValidation)
	case len(in.NewKDFSalt) < cryptox.SaltLen:
		return nil, fmt.Errorf("%w: kdf salt too short", common.ErrorValidation)
	}
	if err := in.NewKDF.Validate(); err != nil {
		return nil, err
	}
	for _, e := range in.Envelopes {
		if _, err := cryptox.ParseEnvelope(e.Payload); err != nil {
			return nil, fmt.Errorf("%w: envelope %s is malformed", common.ErrorValidation, e.ID)
		}
	}

	hash, err := s.hasher.Hash(in.NewAuthSecret)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var tok *SessionToken
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		envRepo := s.repomanager.Envelopes(tx)
		userRepo := s.repomanager.Users(tx)

		expected := in.ExpectedGeneration
		if expected == 0 {
			expected = user.KeyGeneration
		}
		// Envelope saves take a share lock on this row, so once it is held
		// the envelope set cannot change under the rekey.
		current, err := userRepo.LockGeneration(ctx, user.ID)
		if err != nil {
			return err
		}
		if current != expected {
			return common.ErrRekeyIncomplete
		}

		ids, err := envRepo.ListIDs(ctx, user.ID)
		if err != nil {
			return err
		}
		if !coversExactly(ids, in.Envelopes) {
			return common.ErrRekeyIncomplete
		}

		gen, err := userRepo.UpdateCredentials(ctx, user.ID, hash, in.NewKDFSalt, in.NewKDF, expected)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrRekeyIncomplete
			}
			return err
		}

		for _, e := range in.Envelopes {
			if err := envRepo.UpdatePayload(ctx, user.ID, e.ID, e.Payload, gen); err != nil {
				return err
			}
		}

		if _, err := s.sessions.revokeAll(ctx, tx, user.ID); err != nil {
			return err
		}
		// A session that predates TOTP enrollment confirmed a code while
		// enrolling, so it keeps its standing.
		mfa := p.SecondFactor
		if !mfa {
			if mfa, err = totpEnrolled(ctx, s.repomanager, tx, user.ID); err != nil {
				return err
			}
		}
		tok, err = s.sessions.issue(ctx, tx, user, mfa)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "password changed", "user_id", user.ID, "envelopes", len(in.Envelopes))
	if err := s.notifier.PasswordChanged(ctx, user); err != nil {
		s.log.Error(ctx, "password change notification", "error", err)
	}
	return tok, nil
}

func coversExactly(stored []string, supplied []EnvelopeRekey) bool {
	if len(stored) != len(supplied) {
		return false
	}
	want := make(map[string]struct{}, len(stored))
	for _, id := range stored {
		want[id] = struct{}{}
	}
	for _, e := range supplied {
		if _, ok := want[e.ID]; !ok {
			return false
		}
		delete(want, e.ID)
	}
	return len(want) == 0
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Revoke(ctx, sessionID)
}

func (s *AuthService) LogoutAll(ctx context.Context, userID string) (int64, error) {
	return s.sessions.RevokeAll(ctx, userID)
}
