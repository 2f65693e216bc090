package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmitrijs2005/blogcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   API base URL
//	-t int      request timeout in seconds
//	-d string   token database path
//
// args is filtered with flagx.FilterArgs so flags owned by other layers
// (such as -c) do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	timeout := fs.Int("t", int(cfg.Timeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "token database path")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.Timeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}

// parseTimeout accepts a Go duration ("15s") or a bare number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", s)
	}
	return d, nil
}
