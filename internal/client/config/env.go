package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/bookapp/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment keys understood by parseEnv.
const (
	KeyEnv      = "BOOKAPP_ENV"
	KeyDevURL   = "BOOKAPP_DEV_URL"
	KeyProdURL  = "BOOKAPP_PROD_URL"
	KeyDB       = "BOOKAPP_DB"
	KeyLogLevel = "BOOKAPP_LOG_LEVEL"
)

const defaultEnvFile = ".env"

// parseEnv overlays Config with values from the process environment and an
// optional .env file (-env-file, default ".env"). A missing file is not an
// error. Variables already set in the environment win over the file, which
// is how godotenv.Load behaves.
func parseEnv(cfg *Config) {
	path := flagx.ConfigFileFlags().Env
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	overlay := map[string]*string{
		KeyEnv:      &cfg.Env,
		KeyDevURL:   &cfg.DevURL,
		KeyProdURL:  &cfg.ProdURL,
		KeyDB:       &cfg.DatabasePath,
		KeyLogLevel: &cfg.LogLevel,
	}
	for key, dst := range overlay {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
}
