package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the portal service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	AnalyticsCacheTTL time.Duration
	SeedOnStart       bool
	OpenAIAPIKey      string
	AssistantModel    string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PORTAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Campus Portal API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("database.url", "portal.db")
	v.SetDefault("analytics.cache_ttl", "5m")
	v.SetDefault("seed.on_start", true)
	v.SetDefault("assistant.model", "gpt-4o-mini")

	ttlString := v.GetString("analytics.cache_ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid analytics cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		AnalyticsCacheTTL: ttl,
		SeedOnStart:       v.GetBool("seed.on_start"),
		OpenAIAPIKey:      v.GetString("openai_api_key"),
		AssistantModel:    v.GetString("assistant.model"),
	}

	if cfg.DatabaseURL == "" && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("either a database url or a redis url must be provided")
	}

	return cfg, nil
}
