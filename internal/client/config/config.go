package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	TokenStoreSQLite = "sqlite"
	TokenStoreRedis  = "redis"
)

// Config holds runtime settings for the blog CLI.
//
// APIBaseURL may be absolute, or a path that is resolved against
// ServerOrigin (see ResolveBaseURL).
type Config struct {
	APIBaseURL    string
	ServerOrigin  string
	Timeout       time.Duration
	TokenStore    string
	DatabasePath  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LogLevel      string
	LogFormat     string
	LogFile       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "/api/v1"
	c.ServerOrigin = "http://127.0.0.1:8080"
	c.Timeout = 10 * time.Second
	c.TokenStore = TokenStoreSQLite
	c.DatabasePath = "blogcli.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogFile = "blogcli.log"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and args (usually os.Args[1:]), in that order of precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
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

func (c *Config) Validate() error {
	switch c.TokenStore {
	case TokenStoreSQLite, TokenStoreRedis:
	default:
		return fmt.Errorf("unknown token store %q", c.TokenStore)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := c.ResolveBaseURL(); err != nil {
		return err
	}
	return nil
}

// ResolveBaseURL returns the absolute API base URL.
func (c *Config) ResolveBaseURL() (string, error) {
	base, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if base.IsAbs() {
		return base.String(), nil
	}

	origin, err := url.Parse(c.ServerOrigin)
	if err != nil {
		return "", fmt.Errorf("parse server origin: %w", err)
	}
	if !origin.IsAbs() || origin.Host == "" {
		return "", fmt.Errorf("server origin %q is not an absolute url", c.ServerOrigin)
	}
	return origin.ResolveReference(base).String(), nil
}
