package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/platform/db"
)

// missingEnvFile points Load at a file that does not exist so the test only sees t.Setenv values.
func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, db.DriverSQLite, cfg.DBDriver)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, time.Duration(0), cfg.AuthzCacheTTL)
	assert.Equal(t, 10, cfg.LoginRateLimit)
	assert.Equal(t, time.Minute, cfg.LoginRateWindow)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_USER", "auth")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "authdb")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("AUTHZ_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, db.Config{
		Driver:     db.DriverPostgres,
		SQLitePath: "users.db",
		Host:       "pg",
		Port:       "5432",
		User:       "auth",
		Password:   "pw",
		Name:       "authdb",
		SSLMode:    "disable",
	}, cfg.DB())
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
	assert.Equal(t, 30*time.Second, cfg.AuthzCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set.
	// t.Setenv restores the originals after the test; Unsetenv clears them for Load.
	for _, key := range []string{"JWT_SECRET", "PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=4000\nJWT_SECRET=from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "from-file", cfg.JWTSecret)
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantDebug bool
	}{
		{"text info", "info", "text", false},
		{"json debug", "debug", "json", true},
		{"invalid level falls back to info", "loud", "text", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level, LogFormat: tt.format}
			logger := cfg.NewLogger()
			require.NotNil(t, logger)
			assert.Equal(t, tt.wantDebug, logger.Enabled(t.Context(), slog.LevelDebug))
		})
	}
}
