package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/dbx"
	"github.com/dmitrijs2005/eterbox/internal/logging"
	"github.com/dmitrijs2005/eterbox/internal/server/auth"
	"github.com/dmitrijs2005/eterbox/internal/server/config"
	"github.com/dmitrijs2005/eterbox/internal/server/models"
	"github.com/dmitrijs2005/eterbox/internal/server/otpx"
	"github.com/dmitrijs2005/eterbox/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Enrollment is returned once by BeginEnrollment. URI is the QR payload.
type Enrollment struct {
	Secret string
	URI    string
}

type TwoFactorStatus struct {
	Enabled         bool
	State           models.TOTPState
	BackupCodesLeft int
}

// TwoFactorService manages TOTP enrollment and verification and the backup
// codes issued alongside it. Secrets are stored sealed under a per-user key
// derived from the configured TOTP root key.
type TwoFactorService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	rootKey     []byte
	backupKey   cryptox.Secret
	issuer      string
	now         func() time.Time
	log         logging.Logger
}

func NewTwoFactorService(db *sql.DB, m repomanager.RepositoryManager, h *auth.PasswordHasher, cfg *config.Config, l logging.Logger) (*TwoFactorService, error) {
	backupKey, err := cryptox.DeriveSubkey([]byte(cfg.TOTPKey), backupCodesInfo, nil, cryptox.KeySize)
	if err != nil {
		return nil, err
	}
	return &TwoFactorService{
		db:          db,
		repomanager: m,
		hasher:      h,
		rootKey:     []byte(cfg.TOTPKey),
		backupKey:   backupKey,
		issuer:      cfg.TOTPIssuer,
		now:         time.Now,
		log:         l.With("module", "twofactor"),
	}, nil
}

func (s *TwoFactorService) userKey(userID string) (cryptox.Secret, error) {
	return cryptox.DeriveSubkey(s.rootKey, totpSecretInfo, []byte(userID), cryptox.KeySize)
}

func (s *TwoFactorService) sealSecret(userID, secret string) ([]byte, error) {
	key, err := s.userKey(userID)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	env, err := cryptox.Seal(key, []byte(secret), []byte(userID))
	if err != nil {
		return nil, err
	}
	return env.MarshalBinary()
}

func (s *TwoFactorService) openSecret(userID string, ciphertext []byte) (string, error) {
	env, err := cryptox.ParseEnvelope(ciphertext)
	if err != nil {
		return "", err
	}
	key, err := s.userKey(userID)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	plain, err := cryptox.Open(env, key, []byte(userID))
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// BeginEnrollment generates a new secret and stores it as pending. An active
// secret keeps working until ConfirmEnrollment succeeds.
func (s *TwoFactorService) BeginEnrollment(ctx context.Context, userID string) (*Enrollment, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key, err := otpx.Generate(s.issuer, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate totp secret: %w", err)
	}

	ct, err := s.sealSecret(userID, key.Secret)
	if err != nil {
		return nil, fmt.Errorf("seal totp secret: %w", err)
	}
	if err := s.repomanager.TwoFactor(s.db).SavePending(ctx, userID, ct, s.now()); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "totp enrollment started", "user_id", userID)
	return &Enrollment{Secret: key.Secret, URI: key.URI}, nil
}

// ConfirmEnrollment activates the pending secret when code matches it and
// returns freshly generated backup codes. secret, when not empty, must equal
// the pending secret; the server never adopts a client-supplied secret.
func (s *TwoFactorService) ConfirmEnrollment(ctx context.Context, userID, secret, code string) ([]string, error) {
	row, err := s.repomanager.TwoFactor(s.db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidSecondFactor
		}
		return nil, err
	}
	if len(row.PendingCiphertext) == 0 {
		return nil, common.ErrInvalidSecondFactor
	}

	pending, err := s.openSecret(userID, row.PendingCiphertext)
	if err != nil {
		return nil, fmt.Errorf("open pending secret: %w", err)
	}
	if secret != "" && subtle.ConstantTimeCompare([]byte(secret), []byte(pending)) != 1 {
		return nil, common.ErrInvalidSecondFactor
	}

	now := s.now()
	step, err := otpx.Match(pending, code, now)
	if err != nil {
		s.log.Warn(ctx, "totp confirmation failed", "user_id", userID, "kind", "invalid_code")
		return nil, common.ErrInvalidSecondFactor
	}

	codes, err := generateBackupCodes(backupCodeCount)
	if err != nil {
		return nil, err
	}
	records := make([]*models.BackupCode, 0, len(codes))
	for _, c := range codes {
		records = append(records, &models.BackupCode{
			ID:       uuid.NewString(),
			UserID:   userID,
			CodeHash: hashBackupCode(s.backupKey, userID, c),
		})
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.TwoFactor(tx)
		if err := repo.Activate(ctx, userID, step, now); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidSecondFactor
			}
			return err
		}
		return repo.ReplaceBackupCodes(ctx, userID, records)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "totp enrollment confirmed", "user_id", userID)
	return codes, nil
}

// Verify checks code against the active secret. Each time step is accepted
// at most once: the stored last step only moves forward.
func (s *TwoFactorService) Verify(ctx context.Context, userID, code string) error {
	repo := s.repomanager.TwoFactor(s.db)

	row, err := repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidSecondFactor
		}
		return err
	}
	if !row.Active() {
		return common.ErrInvalidSecondFactor
	}

	secret, err := s.openSecret(userID, row.SecretCiphertext)
	if err != nil {
		return fmt.Errorf("open totp secret: %w", err)
	}

	step, err := otpx.Match(secret, code, s.now())
	if err != nil {
		return common.ErrInvalidSecondFactor
	}
	if step <= row.LastUsedStep {
		s.log.Warn(ctx, "totp code replayed", "user_id", userID, "kind", "replay")
		return common.ErrInvalidSecondFactor
	}

	if err := repo.AdvanceStep(ctx, userID, step); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "totp code replayed", "user_id", userID, "kind", "replay_race")
			return common.ErrInvalidSecondFactor
		}
		return err
	}
	return nil
}

// VerifyBackupCode consumes one backup code.
func (s *TwoFactorService) VerifyBackupCode(ctx context.Context, userID, code string) error {
	if !looksLikeBackupCode(code) {
		return common.ErrInvalidSecondFactor
	}
	err := s.repomanager.TwoFactor(s.db).ConsumeBackupCode(ctx, userID, hashBackupCode(s.backupKey, userID, code), s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidSecondFactor
		}
		return err
	}
	s.log.Info(ctx, "backup code used", "user_id", userID)
	return nil
}

// Disable turns two-factor authentication off after re-checking the primary
// factor. The secret and all backup codes are discarded.
func (s *TwoFactorService) Disable(ctx context.Context, userID string, authSecret []byte) error {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := s.hasher.Verify(authSecret, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return common.ErrInvalidCredentials
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.TwoFactor(tx)
		if err := repo.Disable(ctx, userID); err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return repo.DeleteBackupCodes(ctx, userID)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "totp disabled", "user_id", userID)
	return nil
}

func (s *TwoFactorService) Status(ctx context.Context, userID string) (*TwoFactorStatus, error) {
	repo := s.repomanager.TwoFactor(s.db)

	row, err := repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &TwoFactorStatus{State: models.TOTPDisabled}, nil
		}
		return nil, err
	}

	st := &TwoFactorStatus{Enabled: row.Active(), State: row.State}
	if st.Enabled {
		n, err := repo.CountUnusedBackupCodes(ctx, userID)
		if err != nil {
			return nil, err
		}
		st.BackupCodesLeft = n
	}
	return st, nil
}
