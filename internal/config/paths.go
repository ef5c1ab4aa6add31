package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// FileName is the config file name searched for and generated by gen-config.
const FileName = "config.toml"

// appDirName is the per-application directory under the platform config root.
const appDirName = "supamark"

// platformDir holds platform-detection functions that can be overridden in
// tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultDir returns the platform-specific directory for the generated
// config file.
//
// Linux:   $XDG_CONFIG_HOME/supamark (fallback ~/.config/supamark)
// macOS:   ~/Library/Application Support/supamark
// Windows: %APPDATA%/supamark
func DefaultDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultPath returns the full path of the default config file.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
