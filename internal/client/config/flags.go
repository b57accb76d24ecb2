package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Arguments are filtered with flagx.FilterArgs so the config file flag and
// these can share os.Args.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-db", "-t", "-w"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "local database path")
	timeout := fs.Int("t", int(cfg.InactivityTimeout.Seconds()), "inactivity timeout (in seconds)")
	warning := fs.Int("w", int(cfg.InactivityWarning.Seconds()), "inactivity warning (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.InactivityTimeout = time.Duration(*timeout) * time.Second
	cfg.InactivityWarning = time.Duration(*warning) * time.Second
	return nil
}
