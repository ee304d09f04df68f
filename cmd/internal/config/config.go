package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultPort        = "7070"
	DefaultCacheDBPath = ":memory:"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Config is read from the environment once the .env file (development) or
// the SSM parameters (production) have been exported.
type Config struct {
	Port         string
	CacheDBPath  string
	FixturesPath string

	GeminiAPIKey string
	GeminiModel  string

	S3Region string
	S3Bucket string

	WSGatewayEndpoint string
	WSGatewayRegion   string

	SnowflakeNode int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", DefaultPort),
		CacheDBPath:       getEnv("CACHE_DB_PATH", DefaultCacheDBPath),
		FixturesPath:      os.Getenv("FIXTURES_PATH"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:       getEnv("GEMINI_MODEL", DefaultGeminiModel),
		S3Region:          os.Getenv("AWS_S3_REGION"),
		S3Bucket:          os.Getenv("S3_BUCKET_NAME"),
		WSGatewayEndpoint: os.Getenv("WS_GATEWAY_ENDPOINT"),
		WSGatewayRegion:   os.Getenv("WS_GATEWAY_REGION"),
	}

	if raw := os.Getenv("SNOWFLAKE_NODE"); raw != "" {
		node, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SNOWFLAKE_NODE %q: %w", raw, err)
		}
		cfg.SnowflakeNode = node
	}
	return cfg, nil
}

func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) LiveEventsEnabled() bool {
	return c.WSGatewayEndpoint != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
