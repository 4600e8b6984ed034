package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/bookapp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   environment, dev or prod
//	-a string   backend base URL for the selected environment
//	-d string   path to the token database
//	-t int      request timeout in seconds, 0 disables it
//	-l string   log level
//
// Only these flags are looked at; others are filtered out with
// flagx.FilterArgs. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Env, "e", cfg.Env, "environment (dev or prod)")
	addr := fs.String("a", "", "backend base URL for the selected environment")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the token database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if cfg.Env != EnvDev && cfg.Env != EnvProd {
		panic(fmt.Errorf("unknown environment %q", cfg.Env))
	}
	if *timeout < 0 {
		panic(fmt.Errorf("negative timeout %d", *timeout))
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	if *addr != "" {
		if cfg.Env == EnvProd {
			cfg.ProdURL = *addr
		} else {
			cfg.DevURL = *addr
		}
	}
}
