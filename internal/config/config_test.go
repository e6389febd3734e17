package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrelms/comercio-api/internal/repository"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_DSN", "APP_ENV", "DELETE_POLICY"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file:comercio.db", cfg.DatabaseDSN)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, repository.DeletePermissive, cfg.DeletePolicy)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_DSN", "postgres://app:secret@db:5432/comercio")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DELETE_POLICY", "restrict")
	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "postgres://app:secret@db:5432/comercio", cfg.DatabaseDSN)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, repository.DeleteRestrict, cfg.DeletePolicy)
}
