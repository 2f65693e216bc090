package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "/api/v1", c.APIBaseURL)
	assert.Equal(t, "http://127.0.0.1:8080", c.ServerOrigin)
	assert.Equal(t, 10*time.Second, c.Timeout)
	assert.Equal(t, TokenStoreSQLite, c.TokenStore)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url": "http://json.example/api/v1",
		"timeout":      "20s",
		"log_level":    "debug",
	})
	t.Setenv("BLOG_API_BASE_URL", "http://env.example/api/v1")
	t.Setenv("BLOG_TIMEOUT", "30")

	cfg, err := LoadConfig([]string{"-c", path, "-t", "5"})
	require.NoError(t, err)

	assert.Equal(t, "http://env.example/api/v1", cfg.APIBaseURL, "env beats json")
	assert.Equal(t, 5*time.Second, cfg.Timeout, "flags beat env")
	assert.Equal(t, "debug", cfg.LogLevel, "json beats defaults")
}

func TestLoadConfig_InvalidStore(t *testing.T) {
	t.Setenv("BLOG_TOKEN_STORE", "etcd")
	_, err := LoadConfig(nil)
	require.Error(t, err)
}

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		origin  string
		want    string
		wantErr bool
	}{
		{name: "relative default", base: "/api/v1", origin: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080/api/v1"},
		{name: "origin path is replaced", base: "/api/v1", origin: "https://blog.example/app/", want: "https://blog.example/api/v1"},
		{name: "absolute wins", base: "https://api.example/v2", origin: "http://ignored", want: "https://api.example/v2"},
		{name: "bad origin", base: "/api/v1", origin: "localhost:8080", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{APIBaseURL: tt.base, ServerOrigin: tt.origin}
			got, err := c.ResolveBaseURL()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	c := defaults()
	require.NoError(t, c.Validate())

	c.Timeout = 0
	require.Error(t, c.Validate())
}
