package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notational-fzf/shorten-path/internal/ui"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	palette, ok := cfg.Palette()
	require.True(t, ok)
	assert.Equal(t, ui.DefaultPalette(), palette)
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
colors:
  dir: "4"
  line: "#00ff00"
log_level: debug
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Colors{Dir: "4", Line: "#00ff00"}, cfg.Colors)

	palette, ok := cfg.Palette()
	require.True(t, ok)
	assert.Equal(t, termenv.ANSICyan, palette.Path)
	assert.Equal(t, termenv.RGBColor("#00ff00"), palette.Line)
	assert.Equal(t, termenv.ANSIBlue, palette.Dir)
}

func TestLoadFromKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, "colors:\n  path: \"6\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "colors: [", "failed to parse config file"},
		{"bad color", "colors:\n  path: cyan\n", "colors must be"},
		{"bad level", "log_level: loud\n", "log_level must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPaths(t *testing.T) {
	assert.Equal(t, appName, filepath.Base(GetConfigDir()))
	assert.Equal(t, filepath.Join(GetConfigDir(), "config.yaml"), GetConfigFile())
	assert.Equal(t, filepath.Join(GetConfigDir(), "logs"), GetLogsDir())
}
