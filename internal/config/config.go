// Package config loads runtime configuration from an optional .env file, an
// optional YAML file and environment variables, in that order of precedence
// (environment wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendDynamoDB = "dynamodb"
)

// Identity modes.
const (
	IdentityExternal = "external"
	IdentityCookie   = "cookie"
	IdentityToken    = "token"
)

// Config captures all runtime configuration.
type Config struct {
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	Storage  StorageConfig  `yaml:"storage"`
	Identity IdentityConfig `yaml:"identity"`

	// OwnerSecretCost is the bcrypt cost used to hash owner secrets.
	OwnerSecretCost int `yaml:"owner_secret_cost"`

	CORSOrigins []string `yaml:"cors_origins"`

	ReadTimeoutSecs  int `yaml:"read_timeout_secs"`
	WriteTimeoutSecs int `yaml:"write_timeout_secs"`
	IdleTimeoutSecs  int `yaml:"idle_timeout_secs"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend        string `yaml:"backend"`
	SQLitePath     string `yaml:"sqlite_path"`
	RedisURL       string `yaml:"redis_url"`
	RedisKeyPrefix string `yaml:"redis_key_prefix"`
	DynamoTable    string `yaml:"dynamodb_table"`
	DynamoRegion   string `yaml:"dynamodb_region"`
	DynamoEndpoint string `yaml:"dynamodb_endpoint"`
}

// IdentityConfig selects how callers are recognized.
type IdentityConfig struct {
	Mode string `yaml:"mode"`

	// SessionSecret signs anonymous session cookies (cookie mode).
	SessionSecret string `yaml:"session_secret"`

	// ProviderSecret verifies identity-provider tokens (external mode).
	ProviderSecret string `yaml:"provider_secret"`

	SessionTTLHours int  `yaml:"session_ttl_hours"`
	SecureCookies   bool `yaml:"secure_cookies"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:      "8080",
		LogLevel:  "info",
		LogFormat: "text",
		Storage: StorageConfig{
			Backend:    BackendSQLite,
			SQLitePath: "./data/topten.db",
		},
		Identity: IdentityConfig{
			Mode:            IdentityToken,
			SessionTTLHours: 24 * 365,
		},
		OwnerSecretCost:  10,
		CORSOrigins:      []string{"*"},
		ReadTimeoutSecs:  15,
		WriteTimeoutSecs: 15,
		IdleTimeoutSecs:  60,
	}
}

// Load reads configuration, applying defaults and validation.
func Load() (Config, error) {
	if err := godotenv.Load(getEnv("ENV_FILE", ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	cfg.Storage.Backend = getEnv("STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.SQLitePath = getEnv("SQLITE_PATH", cfg.Storage.SQLitePath)
	cfg.Storage.RedisURL = getEnv("REDIS_URL", cfg.Storage.RedisURL)
	cfg.Storage.RedisKeyPrefix = getEnv("REDIS_KEY_PREFIX", cfg.Storage.RedisKeyPrefix)
	cfg.Storage.DynamoTable = getEnv("DYNAMODB_TABLE", cfg.Storage.DynamoTable)
	cfg.Storage.DynamoRegion = getEnv("AWS_REGION", cfg.Storage.DynamoRegion)
	cfg.Storage.DynamoEndpoint = getEnv("DYNAMODB_ENDPOINT", cfg.Storage.DynamoEndpoint)

	cfg.Identity.Mode = getEnv("IDENTITY_MODE", cfg.Identity.Mode)
	cfg.Identity.SessionSecret = getEnv("SESSION_SECRET", cfg.Identity.SessionSecret)
	cfg.Identity.ProviderSecret = getEnv("PROVIDER_SECRET", cfg.Identity.ProviderSecret)
	cfg.Identity.SessionTTLHours = getEnvInt("SESSION_TTL_HOURS", cfg.Identity.SessionTTLHours)
	cfg.Identity.SecureCookies = getEnvBool("SECURE_COOKIES", cfg.Identity.SecureCookies)

	cfg.OwnerSecretCost = getEnvInt("OWNER_SECRET_COST", cfg.OwnerSecretCost)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	cfg.ReadTimeoutSecs = getEnvInt("SERVER_READ_TIMEOUT", cfg.ReadTimeoutSecs)
	cfg.WriteTimeoutSecs = getEnvInt("SERVER_WRITE_TIMEOUT", cfg.WriteTimeoutSecs)
	cfg.IdleTimeoutSecs = getEnvInt("SERVER_IDLE_TIMEOUT", cfg.IdleTimeoutSecs)
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	case BackendRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	case BackendDynamoDB:
		if c.Storage.DynamoTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required for the dynamodb backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	switch c.Identity.Mode {
	case IdentityToken:
	case IdentityCookie:
		if len(c.Identity.SessionSecret) < 32 {
			return fmt.Errorf("SESSION_SECRET must be at least 32 characters in cookie mode")
		}
	case IdentityExternal:
		if c.Identity.ProviderSecret == "" {
			return fmt.Errorf("PROVIDER_SECRET is required in external mode")
		}
	default:
		return fmt.Errorf("unknown IDENTITY_MODE %q", c.Identity.Mode)
	}

	if c.Identity.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	if c.OwnerSecretCost < 4 || c.OwnerSecretCost > 31 {
		return fmt.Errorf("OWNER_SECRET_COST must be between 4 and 31")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json")
	}
	if c.ReadTimeoutSecs <= 0 || c.WriteTimeoutSecs <= 0 || c.IdleTimeoutSecs <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
