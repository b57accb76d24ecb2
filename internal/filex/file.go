// Package filex holds small filesystem helpers for the CLI.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// userHomeDir is a seam for tests.
var userHomeDir = os.UserHomeDir

// EnsureDataDir returns the per-user data directory (~/<name>) and creates it
// with owner-only permissions when missing. An explicit base overrides $HOME.
func EnsureDataDir(base, name string) (string, error) {
	if base == "" {
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("home dir: %w", err)
		}
		base = home
	}

	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
