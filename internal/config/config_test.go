package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fbdraw.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "/dev/fb0", cfg.Device)
	assert.False(t, cfg.Headless())
	assert.Equal(t, 1, cfg.Scale)
	require.NoError(t, cfg.Validate())

	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
output: out.png
width: 320
height: 200
scale: 2
log_level: debug
default_font: /usr/share/fonts/regular.ttf
default_font_size: 1.5
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Headless())
	assert.Equal(t, "out.png", cfg.Output)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, "/usr/share/fonts/regular.ttf", cfg.DefaultFont)
	assert.InDelta(t, 1.5, cfg.DefaultFontSize, 1e-9)
	assert.Equal(t, Defaults().FontCache, cfg.FontCache, "unset keys keep defaults")

	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}

func TestLoadFromFileEmpty(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFromFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"unknown key", "colour: red\n", "colour"},
		{"bad type", "width: wide\n", "cannot unmarshal"},
		{"bad level", "log_level: loud\n", "log_level"},
		{"zero scale", "scale: 0\n", "scale"},
		{"headless size", "output: a.png\nwidth: 0\n", "headless size"},
		{"no target", "device: \"\"\n", "no device and no output"},
		{"negative cache", "font_cache: -1\n", "font_cache"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, Defaults(), cfg)
}
