package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"SALON_PRIMARY__ENV":                   "development",
		"SALON_SERVER__PORT":                   "8080",
		"SALON_SERVER__READ_TIMEOUT":           "15",
		"SALON_SERVER__WRITE_TIMEOUT":          "15",
		"SALON_SERVER__IDLE_TIMEOUT":           "60",
		"SALON_SERVER__CORS_ALLOWED_ORIGINS":   "http://localhost:3000, https://salon.example.com",
		"SALON_DATABASE__HOST":                 "localhost",
		"SALON_DATABASE__PORT":                 "5432",
		"SALON_DATABASE__USER":                 "salon",
		"SALON_DATABASE__PASSWORD":             "secret",
		"SALON_DATABASE__NAME":                 "salon",
		"SALON_DATABASE__SSL_MODE":             "disable",
		"SALON_DATABASE__MAX_OPEN_CONNS":       "10",
		"SALON_DATABASE__MAX_IDLE_CONNS":       "5",
		"SALON_DATABASE__CONN_MAX_LIFETIME":    "300",
		"SALON_DATABASE__CONN_MAX_IDLE_TIME":   "60",
		"SALON_REDIS__ADDRESS":                 "localhost:6379",
		"SALON_AUTH__SECRET_KEY":               "0123456789abcdef0123456789abcdef",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		require.Equal(t, "8080", cfg.Server.Port)
		require.Equal(t, 5432, cfg.Database.Port)
		require.Equal(t, []string{"http://localhost:3000", "https://salon.example.com"}, cfg.Server.CORSAllowedOrigins)
		require.Equal(t, DefaultSessionTTL, cfg.Auth.SessionTTL)
		require.Equal(t, DefaultCookieName, cfg.Auth.CookieName)
		require.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
		require.NotNil(t, cfg.Observability)
		require.Equal(t, "salon", cfg.Observability.ServiceName)
		require.Equal(t, "development", cfg.Observability.Environment)
		require.False(t, cfg.IsProduction())
	})

	t.Run("parses durations", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SALON_AUTH__SESSION_TTL", "2h")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	})

	t.Run("overlays observability settings on defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SALON_OBSERVABILITY__LOGGING__LEVEL", "warn")
		t.Setenv("SALON_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "database")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "warn", cfg.Observability.GetLogLevel())
		require.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
		require.True(t, cfg.Observability.HasCheck("database"))
		require.False(t, cfg.Observability.HasCheck("redis"))
	})

	t.Run("splits trusted proxies", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SALON_SERVER__TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10/32")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, []string{"10.0.0.0/8", "192.168.1.10/32"}, cfg.Server.TrustedProxies)
	})

	t.Run("rejects malformed trusted proxy", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SALON_SERVER__TRUSTED_PROXIES", "10.0.0.1")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("rejects short secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SALON_AUTH__SECRET_KEY", "short")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SALON_PRIMARY__ENV", "moon")

		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestObservabilityConfig(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = ""
	require.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	require.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = "verbose"
	require.Error(t, cfg.Validate())

	require.True(t, cfg.HasCheck("database"))
	require.False(t, cfg.HasCheck("smtp"))

	cfg.HealthChecks.Enabled = false
	require.False(t, cfg.HasCheck("database"))
}
