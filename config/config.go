package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration resolved from the environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Engine   EngineConfig
}

type ServerConfig struct {
	Port         string
	CorsOrigins  []string
	QueryTimeout time.Duration
}

type DatabaseConfig struct {
	// Driver selects the reservation store: "mysql" or "memory" (sample data).
	Driver   string
	URL      string
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	LogLevel string
	Seed     bool
}

type LoggingConfig struct {
	Level     string
	Format    string
	Directory string
}

type EngineConfig struct {
	PopularityConfirmedOnly bool
	HighDemandThreshold     float64
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Port:        envOrDefault("PORT", "8080"),
			CorsOrigins: parseList(os.Getenv("CORS_ORIGINS"), []string{"*"}),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(envOrDefault("STORE_DRIVER", "mysql")),
			URL:      firstNonEmpty(os.Getenv("MYSQL_URL"), os.Getenv("DATABASE_URL")),
			User:     envOrDefault("DB_USER", "root"),
			Password: strings.TrimSpace(os.Getenv("DB_PASS")),
			Host:     envOrDefault("DB_HOST", "127.0.0.1"),
			Port:     envOrDefault("DB_PORT", "3306"),
			Name:     envOrDefault("DB_NAME", "hotel_db"),
			LogLevel: strings.ToLower(envOrDefault("DB_LOG_LEVEL", "warn")),
		},
		Logging: LoggingConfig{
			Level:     envOrDefault("LOG_LEVEL", "info"),
			Format:    envOrDefault("LOG_FORMAT", "text"),
			Directory: envOrDefault("LOG_DIR", "./logs"),
		},
	}

	var err error
	if cfg.Server.QueryTimeout, err = durationEnv("QUERY_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Database.Seed, err = boolEnv("SEED_DATABASE", false); err != nil {
		return Config{}, err
	}
	if cfg.Engine.PopularityConfirmedOnly, err = boolEnv("POPULARITY_CONFIRMED_ONLY", false); err != nil {
		return Config{}, err
	}
	if cfg.Engine.HighDemandThreshold, err = floatEnv("HIGH_DEMAND_THRESHOLD", 0.8); err != nil {
		return Config{}, err
	}
	if t := cfg.Engine.HighDemandThreshold; math.IsNaN(t) || t <= 0 || t > 1 {
		return Config{}, fmt.Errorf("HIGH_DEMAND_THRESHOLD must be in (0, 1], got %v", t)
	}
	switch cfg.Database.Driver {
	case "mysql", "memory":
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be mysql or memory, got %q", cfg.Database.Driver)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func parseList(raw string, def []string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func boolEnv(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func floatEnv(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return v, nil
}
