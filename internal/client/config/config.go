package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/formsclient/internal/common"
)

// Config holds runtime settings shared by the web frontend and the CLI.
type Config struct {
	// BackendURL is the base address every facade path is resolved against.
	BackendURL string
	// RequestTimeout bounds each backend call.
	RequestTimeout time.Duration

	ListenAddr string
	SessionDB  string
	MetadataDB string
	SessionKey string
	LogLevel   string
}

const (
	DefaultBackendURL     = "http://localhost:5179"
	DefaultRequestTimeout = 5000 * time.Millisecond
)

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = DefaultBackendURL
	c.RequestTimeout = DefaultRequestTimeout
	c.ListenAddr = ":8080"
	c.SessionDB = "sessions.db"
	c.MetadataDB = "forms.db"
	c.SessionKey = ""
	c.LogLevel = "info"
}

// Validate checks the values a client cannot start without.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", common.ErrInvalidBackendURL, c.BackendURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// LoadConfig builds a Config from defaults, environment, JSON and flags
// (args excludes the program name). Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
