package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-b", "http://localhost:5179"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-b", "x"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "dash token is not a value",
			args:    []string{"-t", "-5000"},
			allowed: []string{"-t"},
			want:    []string{"-t"},
		},
		{
			name:    "several allowed flags keep order",
			args:    []string{"-b", "http://api:5179", "-c", "conf.json", "-l", ":9090", "--other", "x"},
			allowed: []string{"-b", "-l"},
			want:    []string{"-b", "http://api:5179", "-l", ":9090"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/forms/short.json", ConfigPath([]string{"-c", "/etc/forms/short.json"}))
	assert.Equal(t, "/etc/forms/long.json", ConfigPath([]string{"-b", "x", "-config", "/etc/forms/long.json"}))
	assert.Equal(t, "eq.json", ConfigPath([]string{"-config=eq.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}))
	assert.Equal(t, "2.json", ConfigPath([]string{"-c", "1.json", "-config", "2.json"}))
}
