package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/blogcli/internal/flagx"
	"github.com/dmitrijs2005/blogcli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from a zero value.
type JsonConfig struct {
	APIBaseURL    *string         `json:"api_base_url"`
	ServerOrigin  *string         `json:"server_origin"`
	Timeout       *timex.Duration `json:"timeout"`
	TokenStore    *string         `json:"token_store"`
	DatabasePath  *string         `json:"database_path"`
	RedisAddr     *string         `json:"redis_addr"`
	RedisPassword *string         `json:"redis_password"`
	RedisDB       *int            `json:"redis_db"`
	LogLevel      *string         `json:"log_level"`
	LogFormat     *string         `json:"log_format"`
	LogFile       *string         `json:"log_file"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.ServerOrigin, jc.ServerOrigin)
	if jc.Timeout != nil {
		cfg.Timeout = jc.Timeout.Duration
	}
	setString(&cfg.TokenStore, jc.TokenStore)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogFile, jc.LogFile)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
