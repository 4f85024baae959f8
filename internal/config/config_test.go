package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Configuration {
	return Configuration{
		Server:   ServerConfig{Port: "8080", Mode: "debug"},
		Postgres: PostgresConfig{Host: "db", Port: 5432, User: "fleet", Password: "secret", DBName: "fleet"},
		Auth:     AuthConfig{JWTSecret: "default_super_secret_key"},
		Logging:  LoggingConfig{Level: "info"},
		Engine:   EngineConfig{BatchConcurrency: 8},
	}
}

func TestConfigurationValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	cfg.Server.Mode = "release"
	assert.Error(t, cfg.Validate(), "default jwt secret must be rejected in release mode")

	cfg.Auth.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())

	cfg.Engine.BatchConcurrency = 0
	assert.Error(t, cfg.Validate())
	cfg.Engine.BatchConcurrency = 4

	cfg.Postgres.Host = ""
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "postgres://fleet:secret@db:5432/fleet?sslmode=disable", cfg.Postgres.GetDSN())

	cfg.Postgres.SSLMode = "require"
	assert.Equal(t, "postgres://fleet:secret@db:5432/fleet?sslmode=require", cfg.Postgres.GetDSN())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("FLEETADMIN_SERVER_PORT", "9090")
	t.Setenv("FLEETADMIN_POSTGRES_HOST", "pg.internal")
	t.Setenv("FLEETADMIN_LOGGING_LEVEL", "debug")
	t.Setenv("FLEETADMIN_ENGINE_BATCHCONCURRENCY", "3")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "pg.internal", cfg.Postgres.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 3, cfg.Engine.BatchConcurrency)
}
