package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// Database
	DatabaseURL     string
	DBDriver        string
	DBMaxConns      int
	DBMaxIdleConns  int
	DBConnLifetime  time.Duration
	AutoMigrate     bool
	ShutdownTimeout time.Duration

	// Redis
	RedisURL string

	// HTTP
	AllowedOrigins []string
	RateLimitRPS   int
	RateLimitBurst int
	BodyLimit      int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),

		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBDriver:        getEnv("DB_DRIVER", "pgx"),
		DBMaxConns:      getEnvInt("DB_MAX_CONNS", 25),
		DBMaxIdleConns:  getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime:  time.Duration(getEnvInt("DB_CONN_LIFETIME_MIN", 60)) * time.Minute,
		AutoMigrate:     getEnvBool("AUTO_MIGRATE", true),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SEC", 30)) * time.Second,

		RedisURL: getEnv("REDIS_URL", ""),

		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3001"}),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		BodyLimit:      getEnvInt("BODY_LIMIT_BYTES", 64*1024),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = postgresURLFromParts()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	switch c.DBDriver {
	case "pgx", "postgres":
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: expected pgx or postgres", c.DBDriver)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	if c.RateLimitRPS+c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_RPS plus RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}

// postgresURLFromParts builds a DSN from POSTGRES_HOST, POSTGRES_PORT,
// POSTGRES_USER, POSTGRES_PASSWORD and POSTGRES_DB. Empty when no host is set.
func postgresURLFromParts() string {
	host := getEnv("POSTGRES_HOST", "")
	if host == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getEnv("POSTGRES_USER", "postgres"), getEnv("POSTGRES_PASSWORD", "")),
		Host:   net.JoinHostPort(host, getEnv("POSTGRES_PORT", "5432")),
		Path:   "/" + getEnv("POSTGRES_DB", "postgres"),
	}
	q := u.Query()
	q.Set("sslmode", getEnv("POSTGRES_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesDatabase reports whether a Postgres DSN is configured.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}
