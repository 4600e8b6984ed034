package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("reads explicit env file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "app.env")
		require.NoError(t, os.WriteFile(path, []byte("BOOKAPP_DEV_URL=http://dev:9000\nBOOKAPP_LOG_LEVEL=debug\n"), 0o600))
		withArgs(t, "-env-file", path)

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://dev:9000", cfg.DevURL)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "bookapp.db", cfg.DatabasePath)
	})

	t.Run("process environment wins over file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "app.env")
		require.NoError(t, os.WriteFile(path, []byte("BOOKAPP_DB=file.db\n"), 0o600))
		t.Setenv(KeyDB, "process.db")
		withArgs(t, "-env-file", path)

		cfg := &Config{}
		parseEnv(cfg)

		assert.Equal(t, "process.db", cfg.DatabasePath)
	})

	t.Run("missing default file is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Chdir(t.TempDir())
		withArgs(t)

		cfg := &Config{Env: EnvDev}
		require.NotPanics(t, func() { parseEnv(cfg) })
		assert.Equal(t, EnvDev, cfg.Env)
	})

	t.Run("missing explicit file panics", func(t *testing.T) {
		clearEnv(t)
		withArgs(t, "-env-file", filepath.Join(t.TempDir(), "nope.env"))

		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
