package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SECURE_COOKIES", "")
	t.Setenv("PG_DSN", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("CLICKHOUSE_ENABLED", "")
	t.Setenv("HEALTHCHECK_TIMEOUT_MS", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "change_me", cfg.JWTSecret)
	assert.False(t, cfg.SecureCookies)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Empty(t, cfg.Redis.URL)
	assert.False(t, cfg.ClickHouse.Enabled)
	assert.Equal(t, 3*time.Second, cfg.HealthCheck.Timeout)
	assert.Equal(t, "0.0.0.0:8000", cfg.ListenAddr())
	assert.Equal(t, "http://127.0.0.1:8000/healthz", cfg.HealthCheckURL())
	require.NoError(t, cfg.Validate())
}

func TestPortOverrideDrivesBindAndProbe(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg := Load()

	port, err := cfg.PortNumber()
	require.NoError(t, err)
	assert.Equal(t, 9000, port)
	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddr())
	assert.Equal(t, "http://127.0.0.1:9000/healthz", cfg.HealthCheckURL())
}

func TestSecureCookiesIsCaseInsensitive(t *testing.T) {
	t.Setenv("SECURE_COOKIES", "TRUE")
	assert.True(t, Load().SecureCookies)

	t.Setenv("SECURE_COOKIES", "yes")
	assert.False(t, Load().SecureCookies)
}

func TestValidateRejectsBadPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "65536", "-1", "80.5"} {
		cfg := &Config{Port: port}
		assert.Error(t, cfg.Validate(), "port %q", port)
	}
}

func TestValidateRejectsBadBatcherSettings(t *testing.T) {
	cfg := &Config{Port: "8000", ClickHouse: ClickHouseConfig{Enabled: true, BatchSize: 0, FlushIntervalSeconds: 1}}
	assert.Error(t, cfg.Validate())

	cfg.ClickHouse.BatchSize = 10
	cfg.ClickHouse.FlushIntervalSeconds = 0
	assert.Error(t, cfg.Validate())

	cfg.ClickHouse.Enabled = false
	assert.NoError(t, cfg.Validate())
}

func TestNormalizePostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"non azure", "host=localhost dbname=appdb", "host=localhost dbname=appdb"},
		{
			"azure key value",
			"host=x.postgres.database.azure.com dbname=appdb user=ray ",
			"host=x.postgres.database.azure.com dbname=appdb user=ray sslmode=require",
		},
		{
			"azure with sslmode",
			"host=x.postgres.database.azure.com sslmode=verify-full",
			"host=x.postgres.database.azure.com sslmode=verify-full",
		},
		{
			"azure url",
			"postgres://ray@x.postgres.database.azure.com/appdb",
			"postgres://ray@x.postgres.database.azure.com/appdb?sslmode=require",
		},
		{
			"azure url with params",
			"postgresql://ray@x.postgres.database.azure.com/appdb?connect_timeout=5",
			"postgresql://ray@x.postgres.database.azure.com/appdb?connect_timeout=5&sslmode=require",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePostgresDSN(tt.in))
		})
	}
}

func TestGetClickHouseDSN(t *testing.T) {
	cfg := ClickHouseConfig{
		Host:                   "ch",
		Port:                   "9000",
		Database:               "analytics",
		User:                   "app",
		Password:               "secret",
		AsyncInsertEnabled:     true,
		AsyncInsertWait:        1,
		AsyncInsertMaxDataSize: 1024,
		AsyncInsertBusyTimeout: 200,
	}
	assert.Equal(t,
		"clickhouse://app:secret@ch:9000/analytics?wait_for_async_insert=1&async_insert_max_data_size=1024&async_insert_busy_timeout_ms=200",
		cfg.GetClickHouseDSN())

	cfg.AsyncInsertEnabled = false
	assert.Equal(t, "clickhouse://app:secret@ch:9000/analytics", cfg.GetClickHouseDSN())

	cfg.DSN = "clickhouse://explicit"
	assert.Equal(t, "clickhouse://explicit", cfg.GetClickHouseDSN())
}
