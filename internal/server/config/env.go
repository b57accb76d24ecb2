package config

// Environment variables read by EnvOverlay. They win over flags so secrets
// can stay out of process listings.
const (
	EnvSecretKey   = "ETERBOX_SECRET_KEY"
	EnvTOTPKey     = "ETERBOX_TOTP_KEY"
	EnvDatabaseDSN = "ETERBOX_DATABASE_DSN"
)

func EnvOverlay(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvSecretKey); v != "" {
		cfg.SecretKey = v
	}
	if v := getenv(EnvTOTPKey); v != "" {
		cfg.TOTPKey = v
	}
	if v := getenv(EnvDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
}
