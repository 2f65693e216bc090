package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_origin": "https://blog.example",
		"timeout":       "1500ms",
		"token_store":   "redis",
		"redis_db":      3,
	})

	t.Run("loads from flags", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "https://blog.example", cfg.ServerOrigin)
		assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
		assert.Equal(t, TokenStoreRedis, cfg.TokenStore)
		assert.Equal(t, 3, cfg.RedisDB)
		assert.Equal(t, "/api/v1", cfg.APIBaseURL, "absent keys keep their value")
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		cfg := &Config{ServerOrigin: "http://defaults:1234", Timeout: 42 * time.Second}
		require.NoError(t, parseJson(cfg, nil))

		assert.Equal(t, "http://defaults:1234", cfg.ServerOrigin)
		assert.Equal(t, 42*time.Second, cfg.Timeout)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJson(&Config{}, []string{"-c", bad}))
	})

	t.Run("missing file → error", func(t *testing.T) {
		require.Error(t, parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
