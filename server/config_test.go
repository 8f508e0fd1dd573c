package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "public", cfg.PublicDir)
	assert.Equal(t, "index.html", cfg.IndexFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.NoCache)
}

func TestLoadConfig_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := `{"addr": ":8081", "publicDir": "/srv/www", "noCache": false}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(body), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "/srv/www", cfg.PublicDir)
	assert.False(t, cfg.NoCache)
	assert.Equal(t, "index.html", cfg.IndexFile, "unset keys keep defaults")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(`{not json`), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ASTROPHAGE_ADDR", ":9999")
	t.Setenv("ASTROPHAGE_LOGLEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}
