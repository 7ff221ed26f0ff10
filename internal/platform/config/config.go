// Package config loads the service configuration from PAYLENS_-prefixed
// environment variables so main stays lean. Invalid values fail startup with
// an error naming the offending variable.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	pstrings "paylens/pkg/platform/strings"
)

// Store and audit backend names accepted by FromEnv.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendKafka    = "kafka"
)

// Config aggregates all service configuration.
type Config struct {
	Server   Server
	Log      Log
	Auth     Auth
	Store    Store
	Postgres Postgres
	Redis    RedisConfig
	Audit    Audit
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Log controls structured logging.
type Log struct {
	Level  string // debug|info|warn|error
	Format string // json|text
}

// Auth holds the token and ingest-key settings.
type Auth struct {
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	// APIKeyHash is the bcrypt hash the ingest key is checked against.
	// Empty disables the check.
	APIKeyHash string
}

// Store selects the payment store backend.
type Store struct {
	Backend  string // memory|postgres|redis
	SeedDemo bool
}

// Postgres describes connectivity to PostgreSQL. Shared by the payment and
// audit stores when either selects the postgres backend.
type Postgres struct {
	DSN string
}

// RedisConfig describes connectivity to Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Audit selects where the audit trail goes.
type Audit struct {
	Backend      string // memory|postgres|kafka
	Buffer       int
	KafkaBrokers []string
	KafkaTopic   string
}

const (
	defaultAddr            = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultJWTIssuer       = "paylens"
	defaultJWTAudience     = "paylens-reports"
	defaultAuditBuffer     = 256
	defaultKafkaTopic      = "paylens.audit"
)

// FromEnv builds the configuration from environment variables, applying
// defaults and validating cross-field requirements.
func FromEnv() (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:            valueOrDefault("PAYLENS_ADDR", defaultAddr),
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Log: Log{
			Level:  valueOrDefault("PAYLENS_LOG_LEVEL", defaultLogLevel),
			Format: valueOrDefault("PAYLENS_LOG_FORMAT", defaultLogFormat),
		},
		Auth: Auth{
			JWTSigningKey: valueOrDefault("PAYLENS_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			JWTIssuer:     valueOrDefault("PAYLENS_JWT_ISSUER", defaultJWTIssuer),
			JWTAudience:   valueOrDefault("PAYLENS_JWT_AUDIENCE", defaultJWTAudience),
			APIKeyHash:    os.Getenv("PAYLENS_API_KEY_HASH"),
		},
		Store: Store{
			Backend:  valueOrDefault("PAYLENS_STORE_BACKEND", BackendMemory),
			SeedDemo: parseBoolWithDefault("PAYLENS_SEED_DEMO", false),
		},
		Postgres: Postgres{
			DSN: os.Getenv("PAYLENS_POSTGRES_DSN"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("PAYLENS_REDIS_URL"),
			PoolSize:     parseIntWithDefault("PAYLENS_REDIS_POOL_SIZE", 10),
			MinIdleConns: parseIntWithDefault("PAYLENS_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Audit: Audit{
			Backend:      valueOrDefault("PAYLENS_AUDIT_BACKEND", BackendMemory),
			Buffer:       parseIntWithDefault("PAYLENS_AUDIT_BUFFER", defaultAuditBuffer),
			KafkaBrokers: pstrings.DedupeAndTrim(strings.Split(os.Getenv("PAYLENS_KAFKA_BROKERS"), ",")),
			KafkaTopic:   valueOrDefault("PAYLENS_KAFKA_TOPIC", defaultKafkaTopic),
		},
	}

	for _, d := range []struct {
		key    string
		target *time.Duration
	}{
		{"PAYLENS_READ_TIMEOUT", &cfg.Server.ReadTimeout},
		{"PAYLENS_WRITE_TIMEOUT", &cfg.Server.WriteTimeout},
		{"PAYLENS_IDLE_TIMEOUT", &cfg.Server.IdleTimeout},
		{"PAYLENS_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout},
		{"PAYLENS_REDIS_DIAL_TIMEOUT", &cfg.Redis.DialTimeout},
		{"PAYLENS_REDIS_READ_TIMEOUT", &cfg.Redis.ReadTimeout},
		{"PAYLENS_REDIS_WRITE_TIMEOUT", &cfg.Redis.WriteTimeout},
	} {
		if v := os.Getenv(d.key); v != "" {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s value %q: %w", d.key, v, err)
			}
			*d.target = parsed
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("PAYLENS_POSTGRES_DSN is required when PAYLENS_STORE_BACKEND=postgres")
		}
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("PAYLENS_REDIS_URL is required when PAYLENS_STORE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("invalid PAYLENS_STORE_BACKEND %q, want memory, postgres or redis", c.Store.Backend)
	}

	switch c.Audit.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("PAYLENS_POSTGRES_DSN is required when PAYLENS_AUDIT_BACKEND=postgres")
		}
	case BackendKafka:
		if len(c.Audit.KafkaBrokers) == 0 {
			return fmt.Errorf("PAYLENS_KAFKA_BROKERS is required when PAYLENS_AUDIT_BACKEND=kafka")
		}
	default:
		return fmt.Errorf("invalid PAYLENS_AUDIT_BACKEND %q, want memory, postgres or kafka", c.Audit.Backend)
	}

	if c.Audit.Buffer <= 0 {
		return fmt.Errorf("PAYLENS_AUDIT_BUFFER must be positive, got %d", c.Audit.Buffer)
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}
