package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/formsclient/internal/flagx"
	"github.com/dmitrijs2005/formsclient/internal/timex"
)

// JsonConfig is the on-disk shape of the config file.
type JsonConfig struct {
	BackendURL     string         `json:"backend_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	ListenAddr     string         `json:"listen_addr"`
	SessionDB      string         `json:"session_db"`
	MetadataDB     string         `json:"metadata_db"`
	SessionKey     string         `json:"session_key"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.BackendURL, jc.BackendURL)
	overlay(&cfg.ListenAddr, jc.ListenAddr)
	overlay(&cfg.SessionDB, jc.SessionDB)
	overlay(&cfg.MetadataDB, jc.MetadataDB)
	overlay(&cfg.SessionKey, jc.SessionKey)
	overlay(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
