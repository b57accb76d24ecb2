package config

import (
	"errors"
	"os"
	"time"
)

// Config holds runtime settings for the EterBox CLI.
//
// InactivityTimeout is how long the session may stay idle before the client
// logs out; InactivityWarning is how much of that period remains when the
// "stay logged in?" prompt appears.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	RequestTimeout     time.Duration
	InactivityTimeout  time.Duration
	InactivityWarning  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "eterbox.db"
	c.RequestTimeout = 10 * time.Second
	c.InactivityTimeout = 15 * time.Minute
	c.InactivityWarning = 60 * time.Second
}

func (c *Config) Validate() error {
	if c.ServerEndpointAddr == "" {
		return errors.New("server address is required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.InactivityWarning <= 0 || c.InactivityTimeout <= 0 {
		return errors.New("inactivity timeout and warning must be positive")
	}
	if c.InactivityWarning >= c.InactivityTimeout {
		return errors.New("inactivity warning must be shorter than the timeout")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a config file (if given), command-line flags and the environment.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	EnvOverlay(cfg, os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnvServerAddr overrides the server address.
const EnvServerAddr = "ETERBOX_SERVER"

func EnvOverlay(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvServerAddr); v != "" {
		cfg.ServerEndpointAddr = v
	}
}
