package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort = "8000"

	azurePostgresHost = "postgres.database.azure.com"
)

// Config holds all application configuration
type Config struct {
	Port          string
	JWTSecret     string
	SecureCookies bool
	Postgres      PostgresConfig
	Redis         RedisConfig
	ClickHouse    ClickHouseConfig
	HealthCheck   HealthCheckConfig
}

// PostgresConfig holds PostgreSQL connection settings.
// An empty DSN disables PostgreSQL.
type PostgresConfig struct {
	DSN string
}

// RedisConfig holds Redis connection settings.
// An empty URL disables Redis.
type RedisConfig struct {
	URL string
}

// ClickHouseConfig holds ClickHouse connection settings for visit analytics
type ClickHouseConfig struct {
	Enabled                bool
	Host                   string
	Port                   string
	Database               string
	User                   string
	Password               string
	DSN                    string
	AsyncInsertEnabled     bool  // whether to use async inserts
	AsyncInsertWait        int   // wait_for_async_insert (0 or 1)
	AsyncInsertMaxDataSize int64 // async_insert_max_data_size in bytes
	AsyncInsertBusyTimeout int   // async_insert_busy_timeout_ms in milliseconds
	BufferChannelCapacity  int   // capacity of the visit buffer channel (default: 50,000)
	BatchSize              int   // number of visits to batch before flushing (default: 5,000)
	FlushIntervalSeconds   int   // time interval in seconds to flush batches (default: 1)
}

// HealthCheckConfig holds settings for the container liveness probe
type HealthCheckConfig struct {
	Host    string
	Path    string
	Timeout time.Duration
}

// Load reads configuration from environment variables.
// Values from a .env file in the working directory are applied first
// without overriding variables already set in the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", DefaultPort),
		JWTSecret:     getEnv("JWT_SECRET", "change_me"),
		SecureCookies: strings.ToLower(getEnv("SECURE_COOKIES", "false")) == "true",
		Postgres: PostgresConfig{
			DSN: NormalizePostgresDSN(getEnv("PG_DSN", "")),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		ClickHouse: ClickHouseConfig{
			Enabled:                getEnv("CLICKHOUSE_ENABLED", "0") == "1",
			Host:                   getEnv("CLICKHOUSE_HOST", "127.0.0.1"),
			Port:                   getEnv("CLICKHOUSE_PORT", "9000"),
			Database:               getEnv("CLICKHOUSE_DATABASE", "default"),
			User:                   getEnv("CLICKHOUSE_USER", "app"),
			Password:               getEnv("CLICKHOUSE_PASSWORD", ""),
			DSN:                    getEnv("CLICKHOUSE_DSN", ""),
			AsyncInsertEnabled:     getEnv("CLICKHOUSE_ASYNC_INSERT_ENABLED", "1") == "1",
			AsyncInsertWait:        getEnvAsInt("CLICKHOUSE_ASYNC_INSERT_WAIT", 1),
			AsyncInsertMaxDataSize: getEnvAsInt64("CLICKHOUSE_ASYNC_INSERT_MAX_DATA_SIZE", 10485760),
			AsyncInsertBusyTimeout: getEnvAsInt("CLICKHOUSE_ASYNC_INSERT_BUSY_TIMEOUT", 200),
			BufferChannelCapacity:  getEnvAsInt("VISIT_BUFFER_CAPACITY", 50000),
			BatchSize:              getEnvAsInt("VISIT_BATCH_SIZE", 5000),
			FlushIntervalSeconds:   getEnvAsInt("VISIT_FLUSH_INTERVAL_SECONDS", 1),
		},
		HealthCheck: HealthCheckConfig{
			Host:    "127.0.0.1",
			Path:    "/healthz",
			Timeout: time.Duration(getEnvAsInt64("HEALTHCHECK_TIMEOUT_MS", 3000)) * time.Millisecond,
		},
	}
}

// Validate reports configuration that would keep the server from starting
func (c *Config) Validate() error {
	if _, err := c.PortNumber(); err != nil {
		return err
	}
	if c.ClickHouse.Enabled {
		if c.ClickHouse.BatchSize <= 0 {
			return fmt.Errorf("VISIT_BATCH_SIZE must be positive, got %d", c.ClickHouse.BatchSize)
		}
		if c.ClickHouse.FlushIntervalSeconds <= 0 {
			return fmt.Errorf("VISIT_FLUSH_INTERVAL_SECONDS must be positive, got %d", c.ClickHouse.FlushIntervalSeconds)
		}
	}
	return nil
}

// PortNumber parses PORT as a TCP port in the range 1-65535
func (c *Config) PortNumber() (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil {
		return 0, fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %q: must be between 1 and 65535", c.Port)
	}
	return port, nil
}

// ListenAddr is the address the HTTP server binds to (all interfaces)
func (c *Config) ListenAddr() string {
	return "0.0.0.0:" + strings.TrimSpace(c.Port)
}

// HealthCheckURL is the URL the liveness probe requests
func (c *Config) HealthCheckURL() string {
	return "http://" + c.HealthCheck.Host + ":" + strings.TrimSpace(c.Port) + c.HealthCheck.Path
}

// NormalizePostgresDSN appends sslmode=require to Azure Database for PostgreSQL
// DSNs that do not set an sslmode. Both key/value and URL DSNs are handled.
func NormalizePostgresDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" || !strings.Contains(dsn, azurePostgresHost) || strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		if strings.Contains(dsn, "?") {
			return dsn + "&sslmode=require"
		}
		return dsn + "?sslmode=require"
	}
	return dsn + " sslmode=require"
}

func (c *ClickHouseConfig) GetClickHouseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}

	// Build DSN from components
	dsn := "clickhouse://"
	if c.User != "" {
		dsn += c.User
		if c.Password != "" {
			dsn += ":" + c.Password
		}
		dsn += "@"
	}
	dsn += c.Host + ":" + c.Port + "/" + c.Database

	if c.AsyncInsertEnabled {
		// These settings apply to all queries on this connection
		dsn += "?" + strings.Join([]string{
			fmt.Sprintf("wait_for_async_insert=%d", c.AsyncInsertWait),
			fmt.Sprintf("async_insert_max_data_size=%d", c.AsyncInsertMaxDataSize),
			fmt.Sprintf("async_insert_busy_timeout_ms=%d", c.AsyncInsertBusyTimeout),
		}, "&")
	}

	return dsn
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
