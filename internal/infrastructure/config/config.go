package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Supported key-value backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Host     string `env:"HOST,      default=127.0.0.1"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Store StoreConfig
}

type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"AUTH_TOKEN_TTL,      default=24h"`
	HashPasswords bool          `env:"AUTH_HASH_PASSWORDS, default=false"`

	// RateLimit is requests per second per client on /auth routes; 0 disables it.
	RateLimit float64 `env:"AUTH_RATE_LIMIT, default=5"`
}

type StoreConfig struct {
	Backend    string `env:"STORE_BACKEND, default=sqlite"`
	SQLitePath string `env:"SQLITE_PATH,   default=./data/spendy.db"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=spendy"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr is the listen address of the HTTP API.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Validate rejects unknown backends and a missing JWT secret outside development.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("config: SQLITE_PATH is required for the sqlite backend")
		}
	case BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.Store.Backend)
	}

	if c.Auth.JWTSecret == "" {
		if !c.IsDevelopment() {
			return errors.New("config: JWT_SECRET is required outside development")
		}
		c.Auth.JWTSecret = "dev-secret"
	}
	if c.Auth.RateLimit < 0 {
		return errors.New("config: AUTH_RATE_LIMIT must not be negative")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: AUTH_TOKEN_TTL must be positive")
	}
	return nil
}
