package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/eterbox/internal/flagx"
	"github.com/dmitrijs2005/eterbox/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape. Empty or zero fields leave the current
// value untouched.
type FileConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	DatabasePath       string         `json:"database_path" yaml:"database_path"`
	RequestTimeout     timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	InactivityTimeout  timex.Duration `json:"inactivity_timeout" yaml:"inactivity_timeout"`
	InactivityWarning  timex.Duration `json:"inactivity_warning" yaml:"inactivity_warning"`
}

func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = json.Unmarshal(b, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.InactivityTimeout.Duration > 0 {
		cfg.InactivityTimeout = fc.InactivityTimeout.Duration
	}
	if fc.InactivityWarning.Duration > 0 {
		cfg.InactivityWarning = fc.InactivityWarning.Duration
	}
	return nil
}
