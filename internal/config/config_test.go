package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/courselist-go/pkg/courselist"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("COURSELIST_LOG_LEVEL", "")
	t.Setenv("COURSELIST_LOG_FORMAT", "")
	os.Unsetenv("COURSELIST_LOG_LEVEL")
	os.Unsetenv("COURSELIST_LOG_FORMAT")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, "text", env.LogFormat)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("COURSELIST_LOG_LEVEL", "debug")
	t.Setenv("COURSELIST_LOG_FORMAT", "json")
	t.Setenv("COURSELIST_PREFERENCES", "/etc/courselist.yaml")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, "json", env.LogFormat)

	path, err := env.PreferencesPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/etc/courselist.yaml"), path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("COURSELIST_TEST_DIR", "/data/kurse")

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"~", home},
		{"~/lists/out.csv", filepath.Join(home, "lists", "out.csv")},
		{"$COURSELIST_TEST_DIR/in.xlsx", "/data/kurse/in.xlsx"},
		{"/tmp/../tmp/x.ods", "/tmp/x.ods"},
	}

	for _, tt := range tests {
		got, err := ExpandPath(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got, "ExpandPath(%q)", tt.input)
	}

	rel, err := ExpandPath("list.xlsx")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(rel))
}

func TestPreferencesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	layout := courselist.DefaultLayout()
	layout.HeaderRows = 12
	prefs := &Preferences{
		Source:      "/data/anmeldungen.ods",
		Sheet:       "2024",
		Column:      "W",
		Destination: "/data/kurse.xlsx",
		Auxiliaries: []courselist.Auxiliary{{Label: "Level", Column: "AB"}},
		Language:    "de",
		Layout:      &layout,
	}
	require.NoError(t, prefs.Save(path))

	loaded, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestLoadPreferencesMissing(t *testing.T) {
	prefs, err := LoadPreferences(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Preferences{}, prefs)
}

func TestLoadPreferencesInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unclosed"), 0644))

	_, err := LoadPreferences(path)
	assert.Error(t, err)
}
