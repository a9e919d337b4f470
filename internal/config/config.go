package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `env:"XYZBANK_HTTP_ADDR"`
	HTTPEnabled     bool          `env:"XYZBANK_HTTP_ENABLED"`
	ShutdownTimeout time.Duration `env:"XYZBANK_SHUTDOWN_TIMEOUT"`
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.HTTPAddr = getEnvOrDefault("XYZBANK_HTTP_ADDR", ":8080")
	cfg.HTTPEnabled = getEnvAsBool("XYZBANK_HTTP_ENABLED", false)
	cfg.ShutdownTimeout = getEnvAsDuration("XYZBANK_SHUTDOWN_TIMEOUT", 15*time.Second)

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnvOrDefault(key, strconv.FormatBool(defaultValue))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnvOrDefault(key, defaultValue.String())
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
