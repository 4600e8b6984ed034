package config

import "time"

// Environments selectable with BOOKAPP_ENV or -e.
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config holds runtime settings for the BookApp CLI.
//
// Fields:
//   - Env: "dev" or "prod"; selects which of DevURL/ProdURL is used.
//   - DevURL, ProdURL: backend base URLs.
//   - DatabasePath: SQLite file holding the session tokens (":memory:" for none).
//   - RequestTimeout: upper bound for one API call, replay included. Zero disables it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Env            string
	DevURL         string
	ProdURL        string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Env = EnvDev
	c.DevURL = "http://127.0.0.1:8000"
	c.ProdURL = ""
	c.DatabasePath = "bookapp.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "warn"
}

// BaseURL returns the backend URL for the selected environment.
func (c *Config) BaseURL() string {
	if c.Env == EnvProd {
		return c.ProdURL
	}
	return c.DevURL
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the .env file, JSON (if present) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
