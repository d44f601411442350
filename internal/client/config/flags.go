package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/formsclient/internal/flagx"
)

var knownFlags = []string{"-b", "-t", "-l", "-s", "-m", "-k", "-v"}

// parseFlags populates cfg from the flags this package owns; everything else
// in args (including -c) is filtered out beforehand.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("forms", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BackendURL, "b", cfg.BackendURL, "backend base URL")
	timeoutMs := fs.Int("t", int(cfg.RequestTimeout.Milliseconds()), "backend request timeout (ms)")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "web listen address")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "web session database path")
	fs.StringVar(&cfg.MetadataDB, "m", cfg.MetadataDB, "CLI metadata database path")
	fs.StringVar(&cfg.SessionKey, "k", cfg.SessionKey, "passphrase for sealing tokens at rest")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeoutMs) * time.Millisecond
	return nil
}
