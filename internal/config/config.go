package config

import (
	"os"

	"github.com/andrelms/comercio-api/internal/repository"
)

type Config struct {
	Port         string
	DatabaseDSN  string
	Env          string
	DeletePolicy repository.DeletePolicy
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by main) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file:comercio.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.DeletePolicy = repository.DeletePolicy(getEnv("DELETE_POLICY", string(repository.DeletePermissive)))
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
