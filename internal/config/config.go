// Package config loads environment settings and the user preferences file,
// and expands user-supplied paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "COURSELIST"

// Env holds settings taken from the environment.
type Env struct {
	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// LogFormat is text or json.
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	// Preferences overrides the preferences file location.
	Preferences string `envconfig:"PREFERENCES"`
}

// LoadEnv reads COURSELIST_* environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return &env, nil
}

// PreferencesPath returns the preferences file to use: the environment
// override if set, otherwise courselist/preferences.yaml in the user
// config directory.
func (e *Env) PreferencesPath() (string, error) {
	if e.Preferences != "" {
		return ExpandPath(e.Preferences)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "courselist", "preferences.yaml"), nil
}

// ExpandPath expands environment variables and a leading "~" and returns an
// absolute, cleaned path. An empty path stays empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %q: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return abs, nil
}
