package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the path to the Gemgate data directory.
// - Windows: %APPDATA%\gemgate
// - Other OS: ~/.gemgate
func DataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gemgate")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".gemgate"
	}
	return filepath.Join(home, ".gemgate")
}

// ConfigPath returns the path to the config file (~/.gemgate/config.toml).
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0700)
}
