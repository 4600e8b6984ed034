// Package flagx holds helpers for parsing a subset of os.Args, so several
// configuration stages can each read only the flags they own.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args made of allowed flags and their values.
//
// Two forms are recognised:
//
//	-c conf.json        flag and value as separate arguments
//	-config=conf.json   flag and value joined with '='
//
// A separate value is taken only when the next argument does not start with
// '-'. The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFiles are the paths of optional configuration files named on the
// command line.
type ConfigFiles struct {
	JSON string // -c / -config
	Env  string // -env-file
}

// ConfigFileFlags extracts -c/-config and -env-file from os.Args, ignoring
// everything else. When a flag is repeated the last occurrence wins.
func ConfigFileFlags() ConfigFiles {
	var files ConfigFiles

	args := FilterArgs(os.Args[1:], []string{"-c", "-config", "-env-file"})

	fs := flag.NewFlagSet("files", flag.ContinueOnError)
	fs.StringVar(&files.JSON, "config", "", "Path to JSON config file")
	fs.StringVar(&files.JSON, "c", "", "Path to JSON config file (short)")
	fs.StringVar(&files.Env, "env-file", "", "Path to .env file")
	_ = fs.Parse(args)

	return files
}
