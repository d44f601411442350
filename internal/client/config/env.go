package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var lookupEnv = os.LookupEnv

// loadDotEnv exports the variables of path into the process environment.
// A missing file is not an error; variables already set are not overridden.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"FORMS_BACKEND_URL": &cfg.BackendURL,
		"FORMS_LISTEN_ADDR": &cfg.ListenAddr,
		"FORMS_SESSION_DB":  &cfg.SessionDB,
		"FORMS_METADATA_DB": &cfg.MetadataDB,
		"FORMS_SESSION_KEY": &cfg.SessionKey,
		"FORMS_LOG_LEVEL":   &cfg.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("FORMS_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FORMS_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
