package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/flagx"
	"github.com/dmitrijs2005/eterbox/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape. Duration fields accept "15m" or integer
// nanoseconds. Zero values leave the current setting untouched.
type FileConfig struct {
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN       string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey         string         `json:"secret_key" yaml:"secret_key"`
	TOTPKey           string         `json:"totp_key" yaml:"totp_key"`
	TOTPIssuer        string         `json:"totp_issuer" yaml:"totp_issuer"`
	LogLevel          string         `json:"log_level" yaml:"log_level"`
	DevMode           *bool          `json:"dev_mode" yaml:"dev_mode"`
	SessionTTL        timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	ChallengeTTL      timex.Duration `json:"challenge_ttl" yaml:"challenge_ttl"`
	MFATokenTTL       timex.Duration `json:"mfa_token_ttl" yaml:"mfa_token_ttl"`
	MFAMaxAttempts    int            `json:"mfa_max_attempts" yaml:"mfa_max_attempts"`
	MaxFailedLogins   int            `json:"max_failed_logins" yaml:"max_failed_logins"`
	FailedLoginWindow timex.Duration `json:"failed_login_window" yaml:"failed_login_window"`
	JanitorInterval   timex.Duration `json:"janitor_interval" yaml:"janitor_interval"`

	PasswordHash struct {
		Time      uint32 `json:"time" yaml:"time"`
		MemoryKiB uint32 `json:"memory_kib" yaml:"memory_kib"`
		Threads   uint8  `json:"threads" yaml:"threads"`
	} `json:"password_hash" yaml:"password_hash"`

	ClientKDF struct {
		Time      uint32 `json:"time" yaml:"time"`
		MemoryKiB uint32 `json:"memory_kib" yaml:"memory_kib"`
		Threads   uint8  `json:"threads" yaml:"threads"`
	} `json:"client_kdf" yaml:"client_kdf"`

	WebAuthn struct {
		RPID             string   `json:"rp_id" yaml:"rp_id"`
		RPDisplayName    string   `json:"rp_display_name" yaml:"rp_display_name"`
		RPOrigins        []string `json:"rp_origins" yaml:"rp_origins"`
		AllowCounterless *bool    `json:"allow_counterless" yaml:"allow_counterless"`
	} `json:"webauthn" yaml:"webauthn"`
}

// parseFile loads the file named by -c/-config, if any. Files ending in
// .yaml or .yml are decoded as YAML, anything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, fc)
	default:
		err = json.Unmarshal(b, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration > 0 {
		*dst = v.Duration
	}
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.SecretKey, fc.SecretKey)
	setString(&c.TOTPKey, fc.TOTPKey)
	setString(&c.TOTPIssuer, fc.TOTPIssuer)
	setString(&c.LogLevel, fc.LogLevel)
	if fc.DevMode != nil {
		c.DevMode = *fc.DevMode
	}

	setDuration(&c.SessionTTL, fc.SessionTTL)
	setDuration(&c.ChallengeTTL, fc.ChallengeTTL)
	setDuration(&c.MFATokenTTL, fc.MFATokenTTL)
	setDuration(&c.FailedLoginWindow, fc.FailedLoginWindow)
	setDuration(&c.JanitorInterval, fc.JanitorInterval)
	if fc.MFAMaxAttempts > 0 {
		c.MFAMaxAttempts = fc.MFAMaxAttempts
	}
	if fc.MaxFailedLogins > 0 {
		c.MaxFailedLogins = fc.MaxFailedLogins
	}

	if p := fc.PasswordHash; p.Time > 0 || p.MemoryKiB > 0 || p.Threads > 0 {
		c.PasswordHash.Time = p.Time
		c.PasswordHash.MemoryKiB = p.MemoryKiB
		c.PasswordHash.Threads = p.Threads
	}
	if p := fc.ClientKDF; p.Time > 0 || p.MemoryKiB > 0 || p.Threads > 0 {
		c.ClientKDF.Time = p.Time
		c.ClientKDF.MemoryKiB = p.MemoryKiB
		c.ClientKDF.Threads = p.Threads
	}

	setString(&c.WebAuthn.RPID, fc.WebAuthn.RPID)
	setString(&c.WebAuthn.RPDisplayName, fc.WebAuthn.RPDisplayName)
	if len(fc.WebAuthn.RPOrigins) > 0 {
		c.WebAuthn.RPOrigins = fc.WebAuthn.RPOrigins
	}
	if fc.WebAuthn.AllowCounterless != nil {
		c.WebAuthn.AllowCounterless = *fc.WebAuthn.AllowCounterless
	}
}
