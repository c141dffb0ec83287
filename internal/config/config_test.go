package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Tests point HOME at temp dirs; a cached home would leak between them.
	homedir.DisableCache = true
	os.Exit(m.Run())
}

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "vertical", cfg.Demo.Axis)
	assert.Equal(t, 2, cfg.Demo.Lists)
	assert.Equal(t, 5, cfg.Demo.Items)
	assert.Equal(t, 4, cfg.Replay.Parallel)
	assert.False(t, cfg.Replay.JSON)
}

func TestLoad_FileAndEnv(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "dnd.yaml")
	content := []byte("log:\n  level: debug\n  format: json\ndemo:\n  axis: horizontal\n  items: 8\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("DND_DEMO_LISTS", "3")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "horizontal", cfg.Demo.Axis)
	assert.Equal(t, 8, cfg.Demo.Items)
	assert.Equal(t, 3, cfg.Demo.Lists)
}

func TestLoad_UserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "dnd")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("replay:\n  json: true\n"), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.True(t, cfg.Replay.JSON)
}

func TestLoad_Errors(t *testing.T) {
	type tc struct {
		path    func(t *testing.T) string
		env     map[string]string
		wantErr string
	}

	tests := map[string]tc{
		"explicit file missing": {
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: "error reading config file",
		},
		"bad axis": {
			path:    func(t *testing.T) string { return "" },
			env:     map[string]string{"DND_DEMO_AXIS": "diagonal"},
			wantErr: "demo.axis",
		},
		"bad log format": {
			path:    func(t *testing.T) string { return "" },
			env:     map[string]string{"DND_LOG_FORMAT": "xml"},
			wantErr: "log.format",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolateHome(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(viper.New(), tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
