package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withArgs replaces os.Args for the duration of the test.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

// clearEnv unsets the BookApp variables and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{KeyEnv, KeyDevURL, KeyProdURL, KeyDB, KeyLogLevel} {
		prev, had := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, EnvDev, c.Env)
	assert.Equal(t, "http://127.0.0.1:8000", c.DevURL)
	assert.Equal(t, "bookapp.db", c.DatabasePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestBaseURL(t *testing.T) {
	c := Config{Env: EnvDev, DevURL: "http://dev", ProdURL: "https://prod"}
	assert.Equal(t, "http://dev", c.BaseURL())

	c.Env = EnvProd
	assert.Equal(t, "https://prod", c.BaseURL())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	withArgs(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL())
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(".env", []byte("BOOKAPP_ENV=prod\nBOOKAPP_PROD_URL=https://from-env\nBOOKAPP_DB=env.db\n"), 0o600))
	jsonPath := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"prod_url":        "https://from-json",
		"request_timeout": "30s",
	})
	withArgs(t, "-c", jsonPath, "-d", "flag.db")

	cfg := LoadConfig()

	assert.Equal(t, EnvProd, cfg.Env, "from .env")
	assert.Equal(t, "https://from-json", cfg.BaseURL(), "JSON overrides .env")
	assert.Equal(t, "flag.db", cfg.DatabasePath, "flags override .env")
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout, "JSON timeout survives flag defaults")
}
