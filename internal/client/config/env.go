package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const envPrefix = "BLOG"

// parseEnv overlays cfg with BLOG_* environment variables that are set.
func parseEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	strs := map[string]*string{
		"api_base_url":   &cfg.APIBaseURL,
		"server_origin":  &cfg.ServerOrigin,
		"token_store":    &cfg.TokenStore,
		"database_path":  &cfg.DatabasePath,
		"redis_addr":     &cfg.RedisAddr,
		"redis_password": &cfg.RedisPassword,
		"log_level":      &cfg.LogLevel,
		"log_format":     &cfg.LogFormat,
		"log_file":       &cfg.LogFile,
	}
	for key, dst := range strs {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	for _, key := range []string{"timeout", "redis_db"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	if v.IsSet("timeout") {
		d, err := parseTimeout(v.GetString("timeout"))
		if err != nil {
			return fmt.Errorf("%s_TIMEOUT: %w", envPrefix, err)
		}
		cfg.Timeout = d
	}
	if v.IsSet("redis_db") {
		cfg.RedisDB = v.GetInt("redis_db")
	}
	return nil
}
