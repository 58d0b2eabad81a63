package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultHTTPPort returns the default HTTP port.
func DefaultHTTPPort() int {
	return 8000
}

// DefaultHTTPHost returns the default HTTP listen address.
func DefaultHTTPHost() string {
	return "127.0.0.1"
}

// DefaultConfigPath returns the default path for the Transly config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "transly", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "transly")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "transly")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "transly")
		}
		return filepath.Join(home, ".config", "transly")
	}
}

// DefaultModelsPath returns the default path for the Transly models directory.
func DefaultModelsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "transly", "models")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "transly", "models")
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "transly", "models")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, "transly", "models")
		}
		return filepath.Join(home, ".cache", "transly", "models")
	}
}
