package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/config"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
)

// Ceremony is the first half of a WebAuthn exchange. Options is the JSON the
// authenticator API expects; ChallengeID must be sent back with the response.
type Ceremony struct {
	ChallengeID string
	Options     json.RawMessage
	ExpiresAt   time.Time
}

// webauthnUser adapts a user and their credentials to webauthn.User.
type webauthnUser struct {
	user  *models.User
	creds []*models.WebAuthnCredential
}

func (u *webauthnUser) WebAuthnID() []byte          { return u.user.WebAuthnHandle }
func (u *webauthnUser) WebAuthnName() string        { return u.user.Email }
func (u *webauthnUser) WebAuthnDisplayName() string { return u.user.Name }

// WebAuthnCredentials skips flagged credentials, so the library never
// accepts them.
func (u *webauthnUser) WebAuthnCredentials() []webauthn.Credential {
	out := make([]webauthn.Credential, 0, len(u.creds))
	for _, c := range u.creds {
		if c.Flagged() {
			continue
		}
		out = append(out, toLibraryCredential(c))
	}
	return out
}

func toLibraryCredential(c *models.WebAuthnCredential) webauthn.Credential {
	transports := make([]protocol.AuthenticatorTransport, 0, len(c.Transports))
	for _, t := range c.Transports {
		transports = append(transports, protocol.AuthenticatorTransport(t))
	}
	return webauthn.Credential{
		ID:              c.CredentialID,
		PublicKey:       c.PublicKey,
		AttestationType: c.AttestationType,
		Transport:       transports,
		Flags: webauthn.CredentialFlags{
			UserPresent:    true,
			UserVerified:   true,
			BackupEligible: c.BackupEligible,
			BackupState:    c.BackupState,
		},
		Authenticator: webauthn.Authenticator{
			AAGUID:    c.AAGUID,
			SignCount: c.SignCount,
		},
	}
}

// WebAuthnService runs registration and authentication ceremonies for
// platform authenticators. Ceremony state lives in the challenges table:
// single use, expiring on the server clock.
type WebAuthnService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	wa               *webauthn.WebAuthn
	sessions         *SessionService
	origins          []string
	ttl              time.Duration
	allowCounterless bool
	now              func() time.Time
	log              logging.Logger
}

func NewWebAuthnService(db *sql.DB, m repomanager.RepositoryManager, sessions *SessionService, cfg *config.Config, l logging.Logger) (*WebAuthnService, error) {
	wa, err := webauthn.New(&webauthn.Config{
		RPID:          cfg.WebAuthn.RPID,
		RPDisplayName: cfg.WebAuthn.RPDisplayName,
		RPOrigins:     cfg.WebAuthn.RPOrigins,
	})
	if err != nil {
		return nil, fmt.Errorf("webauthn config: %w", err)
	}
	return &WebAuthnService{
		db:               db,
		repomanager:      m,
		wa:               wa,
		sessions:         sessions,
		origins:          cfg.WebAuthn.RPOrigins,
		ttl:              cfg.ChallengeTTL,
		allowCounterless: cfg.WebAuthn.AllowCounterless,
		now:              time.Now,
		log:              l.With("module", "webauthn"),
	}, nil
}

func (s *WebAuthnService) loadUser(ctx context.Context, userID string) (*webauthnUser, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	creds, err := s.repomanager.Passkeys(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &webauthnUser{user: user, creds: creds}, nil
}

func (s *WebAuthnService) storeCeremony(ctx context.Context, kind models.ChallengeKind, userID string,
	options any, session *webauthn.SessionData) (*Ceremony, error) {

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	opts, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	ch := &models.Challenge{
		ID:        uuid.NewString(),
		Kind:      kind,
		UserID:    userID,
		Payload:   payload,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.repomanager.Challenges(s.db).Create(ctx, ch); err != nil {
		return nil, err
	}
	return &Ceremony{ChallengeID: ch.ID, Options: opts, ExpiresAt: ch.ExpiresAt}, nil
}

// takeCeremony consumes the challenge and checks the parts of the client
// data the library would otherwise report as one generic failure. A
// non-empty owner leaves challenges issued to anyone else untouched.
func (s *WebAuthnService) takeCeremony(ctx context.Context, id string, kind models.ChallengeKind, owner string,
	client protocol.CollectedClientData) (*models.Challenge, *webauthn.SessionData, error) {

	repo := s.repomanager.Challenges(s.db)
	var ch *models.Challenge
	var err error
	if owner != "" {
		ch, err = repo.ConsumeOwned(ctx, id, kind, owner)
	} else {
		ch, err = repo.Consume(ctx, id, kind)
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrChallengeNotFound
		}
		return nil, nil, err
	}
	if ch.Expired(s.now()) {
		return nil, nil, common.ErrChallengeExpired
	}

	var session webauthn.SessionData
	if err := json.Unmarshal(ch.Payload, &session); err != nil {
		return nil, nil, fmt.Errorf("decode ceremony: %w", err)
	}

	if !slices.Contains(s.origins, client.Origin) {
		return nil, nil, common.ErrChallengeOriginMismatch
	}
	if client.Challenge != session.Challenge {
		return nil, nil, common.ErrChallengeMismatch
	}
	return ch, &session, nil
}

// BeginRegistration asks for a resident, user-verifying platform credential.
// Credentials the user already has are excluded.
func (s *WebAuthnService) BeginRegistration(ctx context.Context, userID string) (*Ceremony, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclusions := make([]protocol.CredentialDescriptor, 0, len(u.creds))
	for _, c := range u.WebAuthnCredentials() {
		exclusions = append(exclusions, c.Descriptor())
	}

	options, session, err := s.wa.BeginRegistration(u,
		webauthn.WithAuthenticatorSelection(protocol.AuthenticatorSelection{
			AuthenticatorAttachment: protocol.Platform,
			ResidentKey:             protocol.ResidentKeyRequirementRequired,
			RequireResidentKey:      protocol.ResidentKeyRequired(),
			UserVerification:        protocol.VerificationRequired,
		}),
		webauthn.WithConveyancePreference(protocol.PreferNoAttestation),
		webauthn.WithExclusions(exclusions),
	)
	if err != nil {
		return nil, fmt.Errorf("begin registration: %w", err)
	}

	return s.storeCeremony(ctx, models.ChallengeWebAuthnRegistration, userID, options, session)
}

// FinishRegistration verifies the attestation and stores the credential.
func (s *WebAuthnService) FinishRegistration(ctx context.Context, userID, challengeID, name string, response []byte) (*models.WebAuthnCredential, error) {
	parsed, err := protocol.ParseCredentialCreationResponseBody(bytes.NewReader(response))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAssertionInvalid, err)
	}

	_, session, err := s.takeCeremony(ctx, challengeID, models.ChallengeWebAuthnRegistration, userID, parsed.Response.CollectedClientData)
	if err != nil {
		s.log.Warn(ctx, "registration rejected", "user_id", userID, "kind", err.Error())
		return nil, err
	}

	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cred, err := s.wa.CreateCredential(u, *session, parsed)
	if err != nil {
		s.log.Warn(ctx, "registration rejected", "user_id", userID, "kind", "assertion_invalid", "error", err)
		return nil, common.ErrAssertionInvalid
	}

	transports := make([]string, 0, len(cred.Transport))
	for _, t := range cred.Transport {
		transports = append(transports, string(t))
	}
	model := &models.WebAuthnCredential{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            name,
		CredentialID:    cred.ID,
		PublicKey:       cred.PublicKey,
		AttestationType: cred.AttestationType,
		AAGUID:          cred.Authenticator.AAGUID,
		SignCount:       cred.Authenticator.SignCount,
		Transports:      transports,
		BackupEligible:  cred.Flags.BackupEligible,
		BackupState:     cred.Flags.BackupState,
		CreatedAt:       s.now(),
	}
	if err := s.repomanager.Passkeys(s.db).Create(ctx, model); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "passkey registered", "user_id", userID, "passkey_id", model.ID)
	return model, nil
}

// BeginLogin issues an assertion challenge. A known email with usable
// credentials gets an allow-list; anything else gets a discoverable
// challenge, which looks the same for existing and missing accounts.
func (s *WebAuthnService) BeginLogin(ctx context.Context, emailHint string) (*Ceremony, error) {
	if emailHint != "" {
		user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(emailHint))
		switch {
		case err == nil:
			u, err := s.loadUser(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			if len(u.WebAuthnCredentials()) > 0 {
				options, session, err := s.wa.BeginLogin(u, webauthn.WithUserVerification(protocol.VerificationRequired))
				if err != nil {
					return nil, fmt.Errorf("begin login: %w", err)
				}
				return s.storeCeremony(ctx, models.ChallengeWebAuthnLogin, user.ID, options, session)
			}
		case !errors.Is(err, common.ErrorNotFound):
			return nil, err
		}
	}

	options, session, err := s.wa.BeginDiscoverableLogin(webauthn.WithUserVerification(protocol.VerificationRequired))
	if err != nil {
		return nil, fmt.Errorf("begin discoverable login: %w", err)
	}
	return s.storeCeremony(ctx, models.ChallengeWebAuthnLogin, "", options, session)
}

// signCountAdvanced reports whether reported is acceptable after stored.
func signCountAdvanced(stored, reported uint32, allowCounterless bool) bool {
	if reported > stored {
		return true
	}
	return allowCounterless && stored == 0 && reported == 0
}

// FinishLogin verifies an assertion and issues a session. A signature
// counter that does not move forward flags the credential for good.
func (s *WebAuthnService) FinishLogin(ctx context.Context, challengeID string, response []byte, remote string) (*LoginResult, error) {
	parsed, err := protocol.ParseCredentialRequestResponseBody(bytes.NewReader(response))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAssertionInvalid, err)
	}

	ch, session, err := s.takeCeremony(ctx, challengeID, models.ChallengeWebAuthnLogin, "", parsed.Response.CollectedClientData)
	if err != nil {
		s.log.Warn(ctx, "assertion rejected", "kind", err.Error(), "remote", remote)
		return nil, err
	}

	pkRepo := s.repomanager.Passkeys(s.db)
	stored, err := pkRepo.GetByCredentialID(ctx, parsed.RawID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAssertionInvalid
		}
		return nil, err
	}
	if stored.Flagged() {
		s.log.Warn(ctx, "flagged passkey presented", "user_id", stored.UserID, "passkey_id", stored.ID, "kind", "clone_detected")
		return nil, common.ErrCloneDetected
	}
	if ch.UserID != "" && ch.UserID != stored.UserID {
		return nil, common.ErrAssertionInvalid
	}

	u, err := s.loadUser(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if ch.UserID != "" {
		_, err = s.wa.ValidateLogin(u, *session, parsed)
	} else {
		_, err = s.wa.ValidateDiscoverableLogin(func(rawID, userHandle []byte) (webauthn.User, error) {
			if !bytes.Equal(userHandle, u.user.WebAuthnHandle) {
				return nil, common.ErrAssertionInvalid
			}
			return u, nil
		}, *session, parsed)
	}
	if err != nil {
		s.log.Warn(ctx, "assertion rejected", "user_id", stored.UserID, "kind", "assertion_invalid", "error", err)
		return nil, common.ErrAssertionInvalid
	}

	reported := parsed.Response.AuthenticatorData.Counter
	if !signCountAdvanced(stored.SignCount, reported, s.allowCounterless) {
		if err := pkRepo.Flag(ctx, stored.ID, s.now()); err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		s.log.Warn(ctx, "passkey flagged", "user_id", stored.UserID, "passkey_id", stored.ID,
			"kind", "clone_detected", "stored", stored.SignCount, "reported", reported)
		return nil, common.ErrCloneDetected
	}

	backupState := parsed.Response.AuthenticatorData.Flags.HasBackupState()
	if err := pkRepo.UpdateSignCount(ctx, stored.ID, stored.SignCount, reported, backupState, s.now()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAssertionInvalid
		}
		return nil, err
	}

	tok, err := s.sessions.Issue(ctx, u.user, true)
	if err != nil {
		return nil, err
	}
	if err := s.repomanager.Users(s.db).TouchLastSignedIn(ctx, u.user.ID, s.now()); err != nil {
		s.log.Error(ctx, "touch last signed in", "error", err)
	}
	if err := s.repomanager.LoginAttempts(s.db).Record(ctx, &models.LoginAttempt{
		UserID: u.user.ID, Email: u.user.Email, Success: true, Reason: reasonPasskey, RemoteAddr: remote, CreatedAt: s.now(),
	}); err != nil {
		s.log.Error(ctx, "record login attempt", "error", err)
	}

	return &LoginResult{Session: tok, UserID: u.user.ID, KeyGeneration: u.user.KeyGeneration}, nil
}

func (s *WebAuthnService) ListCredentials(ctx context.Context, userID string) ([]*models.WebAuthnCredential, error) {
	return s.repomanager.Passkeys(s.db).ListByUser(ctx, userID)
}

func (s *WebAuthnService) RemoveCredential(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Passkeys(s.db).Delete(ctx, userID, id); err != nil {
		return err
	}
	s.log.Info(ctx, "passkey removed", "user_id", userID, "passkey_id", id)
	return nil
}
