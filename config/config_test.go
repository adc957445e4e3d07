package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
baseUrl: https://hr.example.com
pageSize: 25
requestTimeout: 10s
autoCloseDelay: 2s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com", cfg.BaseURL)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout.Std())
	assert.Equal(t, 2*time.Second, cfg.AutoCloseDelay.Std())
}

func TestLoadDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, `baseUrl: http://localhost:9090`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", cfg.BaseURL)
	assert.Equal(t, Default().PageSize, cfg.PageSize)
	assert.Equal(t, Default().RequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, Default().AutoCloseDelay, cfg.AutoCloseDelay)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `requestTimeout: fast`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
