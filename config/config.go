package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration. Driver is "sqlite" or "postgres"; DSN is the
	// sqlite file path (":memory:" allowed) or a postgres connection string.
	DBDriver string
	DBDSN    string

	// Spoonacular proxy configuration. An empty APIKey does not prevent
	// startup; proxy routes report an upstream error instead.
	SpoonacularAPIKey  string
	SpoonacularBaseURL string
	CacheTTL           time.Duration

	// Redis configuration. When RedisURL is empty the response cache runs
	// in-process.
	RedisURL string

	// Seed file loaded into an empty recipe table at startup (optional).
	SeedFile string

	// Logging
	LogLevel  string
	LogPretty bool
}

const (
	defaultPort        = "5000"
	defaultDBDriver    = "sqlite"
	defaultDBDSN       = "recipes.db"
	defaultBaseURL     = "https://api.spoonacular.com"
	defaultCacheTTLSec = 3600
)

// Load creates a Config from environment variables, applying defaults for
// everything that is safe to default.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:         getEnv("PORT", defaultPort),
		ServerHost:         getEnv("HOST", ""),
		DBDriver:           getEnv("DB_DRIVER", defaultDBDriver),
		DBDSN:              getEnv("DB_DSN", defaultDBDSN),
		SpoonacularAPIKey:  os.Getenv("SPOONACULAR_API_KEY"),
		SpoonacularBaseURL: getEnv("SPOONACULAR_BASE_URL", defaultBaseURL),
		RedisURL:           os.Getenv("REDIS_URL"),
		SeedFile:           getEnv("SEED_FILE", "data/recipes.json"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPretty:          os.Getenv("LOG_PRETTY") == "true",
	}

	ttlSec, err := getEnvInt("CACHE_TTL_SECONDS", defaultCacheTTLSec)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = time.Duration(ttlSec) * time.Second

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.ServerPort)
	}
	if c.DBDriver != "sqlite" && c.DBDriver != "postgres" {
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN must not be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric, got %q", key, v)
	}
	return n, nil
}
