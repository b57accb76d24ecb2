package config

import (
	"flag"
	"strings"

	"github.com/dmitrijs2005/eterbox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string      gRPC bind address (e.g. ":50051")
//	-d string      PostgreSQL DSN
//	-s string      session token signing key
//	-k string      TOTP root key
//	-l string      log level
//	-dev           development mode (weak secrets allowed)
//	-rp string     WebAuthn relying party id
//	-origins list  comma separated WebAuthn origins
//	-session-ttl   session lifetime (e.g. "168h")
//
// Unknown flags are filtered out with flagx.FilterArgs so the config file
// flag and these can share os.Args.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-k", "-l", "-dev", "-rp", "-origins", "-session-ttl"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "session token signing key")
	fs.StringVar(&cfg.TOTPKey, "k", cfg.TOTPKey, "totp root key")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "development mode")
	fs.StringVar(&cfg.WebAuthn.RPID, "rp", cfg.WebAuthn.RPID, "webauthn relying party id")
	origins := fs.String("origins", strings.Join(cfg.WebAuthn.RPOrigins, ","), "comma separated webauthn origins")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "session lifetime")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.WebAuthn.RPOrigins = splitList(*origins)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
