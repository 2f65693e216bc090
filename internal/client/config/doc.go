// Package config loads runtime configuration for the blog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables with the BLOG_ prefix, read through viper.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL, absolute or relative to the server origin
//	-t int      request timeout (seconds)
//	-d string   path of the local token database
//
// Environment
//
//	BLOG_API_BASE_URL    BLOG_SERVER_ORIGIN   BLOG_TIMEOUT
//	BLOG_TOKEN_STORE     BLOG_DATABASE_PATH   BLOG_REDIS_ADDR
//	BLOG_REDIS_PASSWORD  BLOG_REDIS_DB        BLOG_LOG_LEVEL
//	BLOG_LOG_FORMAT
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "/api/v1",
//	  "server_origin": "http://127.0.0.1:8080",
//	  "timeout": "10s",
//	  "token_store": "sqlite",
//	  "database_path": "blogcli.db"
//	}
package config
