package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/emurenMRz/eml2doc/internal/automation"
	"github.com/emurenMRz/eml2doc/internal/poller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, poller.DefaultPolicy(), cfg.Policy())
	assert.Equal(t, automation.FormatDOC, cfg.SaveFormat())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eml2doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("attempts: 7\nbackoff: 250ms\nmax_backoff: 2s\nformat: rtf\n"), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, poller.Policy{MaxAttempts: 7, Backoff: 250 * time.Millisecond, MaxBackoff: 2 * time.Second}, cfg.Policy())
	assert.Equal(t, automation.FormatRTF, cfg.SaveFormat())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("EML2DOC_ATTEMPTS", "5")
	t.Setenv("EML2DOC_LOG_FORMAT", "json")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Attempts)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Attempts: 1, Format: "doc", LogLevel: "info", LogFormat: "text"}
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*Config){
		"attempts":   func(c *Config) { c.Attempts = 0 },
		"backoff":    func(c *Config) { c.Backoff = -time.Second },
		"format":     func(c *Config) { c.Format = "pdf" },
		"log level":  func(c *Config) { c.LogLevel = "loud" },
		"log format": func(c *Config) { c.LogFormat = "xml" },
	} {
		cfg := valid
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}
