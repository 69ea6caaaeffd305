// Package paths resolves the per-user configuration and data directory
// locations for fetters.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fettersdev/fetters/pkg/types"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "FETTERS_CONFIG_DIR"
	EnvDataDir   = "FETTERS_DATA_DIR"
)

// File names inside the resolved directories.
const (
	ConfigFileName   = "fetters.toml"
	DatabaseFileName = "fetters.db"
)

// platformDir holds platform-detection functions that can be overridden in
// tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/fetters (fallback ~/.config/fetters)
// macOS:   ~/Library/Application Support/fetters
// Windows: %APPDATA%/fetters
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "fetters"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", types.ErrApplicationDir, err)
		}
		return filepath.Join(home, ".config", "fetters"), nil
	default:
		// macOS and Windows use os.UserConfigDir, which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", types.ErrApplicationDir, err)
		}
		return filepath.Join(dir, "fetters"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory,
// where the SQLite database file lives.
//
// Linux:   $XDG_DATA_HOME/fetters (fallback ~/.local/share/fetters)
// macOS:   ~/Library/Application Support/fetters
// Windows: %APPDATA%/fetters
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "fetters"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", types.ErrApplicationDir, err)
		}
		return filepath.Join(home, ".local", "share", "fetters"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", types.ErrApplicationDir, err)
		}
		return filepath.Join(dir, "fetters"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > FETTERS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > FETTERS_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}
