package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  port: "9090"
  environment: "staging"
database:
  url: "postgres://u:p@db:5432/trackify?sslmode=disable"
  migrate_on_start: false
auth:
  jwt_secret: "file-secret"
  jwt_expiration_hours: 12
logging:
  level: "debug"
  json: true
cache:
  exercise_mb: 16
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// clearEnv makes sure values from the developer's shell don't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "DATABASE_URL", "MIGRATE_ON_START",
		"JWT_SECRET", "JWT_EXPIRATION_HOURS",
		"LOG_LEVEL", "LOG_FILE", "LOG_TO_STDOUT", "LOG_JSON", "EXERCISE_CACHE_MB",
	} {
		if v, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, v) })
		}
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.True(t, cfg.MigrateOnStart)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, 8, cfg.ExerciseCacheMB)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "postgres://u:p@db:5432/trackify?sslmode=disable", cfg.DatabaseURL)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, 12, cfg.JWTExpirationHours)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, 16, cfg.ExerciseCacheMB)
}

// Env vars take precedence over the file so deployments can override it.
func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MIGRATE_ON_START", "true")
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, 12, cfg.JWTExpirationHours, "unparseable env keeps the file value")
	assert.Equal(t, "staging", cfg.Environment)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing jwt secret",
			env:  map[string]string{},
		},
		{
			name: "non-positive expiration",
			env:  map[string]string{"JWT_SECRET": "s", "JWT_EXPIRATION_HOURS": "0"},
		},
		{
			name: "empty port",
			env:  map[string]string{"JWT_SECRET": "s", "PORT": ""},
		},
		{
			name: "non-positive cache size",
			env:  map[string]string{"JWT_SECRET": "s", "EXERCISE_CACHE_MB": "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s")

	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s")

	_, err := Load(writeTemp(t, "server: [unclosed"))
	assert.Error(t, err)
}
