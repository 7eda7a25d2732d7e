package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/ukaji3/courselist-go/pkg/courselist"
)

// Preferences are the last used generator settings.
type Preferences struct {
	Source      string                 `yaml:"source"`
	Sheet       string                 `yaml:"sheet"`
	Column      string                 `yaml:"column"`
	Destination string                 `yaml:"destination"`
	ShowPrice   bool                   `yaml:"show_price"`
	Auxiliaries []courselist.Auxiliary `yaml:"auxiliaries,omitempty"`
	Language    string                 `yaml:"language,omitempty"`
	Layout      *courselist.Layout     `yaml:"layout,omitempty"`
}

// LoadPreferences reads the preferences file. A missing file yields empty
// preferences.
func LoadPreferences(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Preferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var prefs Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %q: %w", path, err)
	}
	return &prefs, nil
}

// Save writes the preferences file, creating its directory if needed.
func (p *Preferences) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
