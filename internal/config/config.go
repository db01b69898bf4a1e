package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	// APIBaseURL is the base URL of the remote commerce API, e.g.
	// "https://localhost:7079/api".
	APIBaseURL string

	// JWTSecret verifies the signed bearer token carried in the
	// access_token cookie. The route guard cannot run without it.
	JWTSecret string
}

// Load reads configuration from the environment, consulting a .env file
// first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PAZAR_PORT", "8080"),
		DBPath:     getEnv("PAZAR_DB_PATH", "pazaryeri.db"),
		LogLevel:   getEnv("PAZAR_LOG_LEVEL", "info"),
		APIBaseURL: getEnv("PAZAR_API_BASE_URL", "https://localhost:7079/api"),
		JWTSecret:  os.Getenv("PAZAR_JWT_KEY"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("PAZAR_JWT_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
