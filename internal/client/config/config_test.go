package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/formsclient/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5179", c.BackendURL)
	assert.Equal(t, 5000*time.Millisecond, c.RequestTimeout)
	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.SessionKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		is      error
	}{
		{name: "defaults ok", mutate: func(*Config) {}},
		{name: "no scheme", mutate: func(c *Config) { c.BackendURL = "localhost:5179" }, wantErr: true, is: common.ErrInvalidBackendURL},
		{name: "garbage", mutate: func(c *Config) { c.BackendURL = "::" }, wantErr: true, is: common.ErrInvalidBackendURL},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())

	origLookup := lookupEnv
	t.Cleanup(func() { lookupEnv = origLookup })
	lookupEnv = func(name string) (string, bool) {
		env := map[string]string{
			"FORMS_BACKEND_URL": "http://env:1",
			"FORMS_LOG_LEVEL":   "debug",
		}
		v, ok := env[name]
		return v, ok
	}

	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"backend_url":"http://json:2","listen_addr":":9000"}`), 0o600))

	cfg, err := LoadConfig([]string{"-c", path, "-t", "750"})
	require.NoError(t, err)

	want := &Config{
		BackendURL:     "http://json:2",
		RequestTimeout: 750 * time.Millisecond,
		ListenAddr:     ":9000",
		SessionDB:      "sessions.db",
		MetadataDB:     "forms.db",
		LogLevel:       "debug",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_InvalidBackendFromFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadConfig([]string{"-b", "not-a-url"})
	require.ErrorIs(t, err, common.ErrInvalidBackendURL)
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FORMS_LISTEN_ADDR=:7777\n"), 0o600))
	t.Setenv("FORMS_LISTEN_ADDR", "")
	require.NoError(t, os.Unsetenv("FORMS_LISTEN_ADDR"))

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.ListenAddr)
}
