package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 15*time.Minute, c.InactivityTimeout)
	assert.Equal(t, 60*time.Second, c.InactivityWarning)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no address", func(c *Config) { c.ServerEndpointAddr = "" }},
		{"zero timeout", func(c *Config) { c.InactivityTimeout = 0 }},
		{"warning equals timeout", func(c *Config) { c.InactivityWarning = c.InactivityTimeout }},
		{"warning longer than timeout", func(c *Config) { c.InactivityWarning = 2 * c.InactivityTimeout }},
		{"zero request timeout", func(c *Config) { c.RequestTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cli"}
	t.Setenv(EnvServerAddr, "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
}

func TestLoadConfig_EnvWins(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cli", "-a", "flag:1"}
	t.Setenv(EnvServerAddr, "env:2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env:2", cfg.ServerEndpointAddr)
}

func TestLoadConfig_RejectsInvertedInactivity(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"cli", "-t", "30", "-w", "60"}

	_, err := LoadConfig()
	assert.Error(t, err)
}
