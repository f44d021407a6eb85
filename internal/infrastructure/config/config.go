package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Console ConsoleConfig
	MockAPI MockAPIConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// ConsoleConfig configures the operator console.
type ConsoleConfig struct {
	Port       string        `env:"CONSOLE_PORT, default=3000"`
	APIBaseURL string        `env:"API_BASE_URL, default=http://localhost:5000/api"`
	APITimeout time.Duration `env:"API_TIMEOUT,  default=15s"`
	// TokenStore selects where the bearer token lives: "memory" or "redis".
	TokenStore string `env:"TOKEN_STORE, default=memory"`
	TokenKey   string `env:"TOKEN_KEY,   default=auth_token"`
}

// MockAPIConfig configures the development REST API.
type MockAPIConfig struct {
	Port      string        `env:"MOCKAPI_PORT,      default=5000"`
	BasePath  string        `env:"MOCKAPI_BASE_PATH, default=/api"`
	JWTSecret string        `env:"JWT_SECRET,        default=dev-secret-change-me"`
	TokenTTL  time.Duration `env:"JWT_TTL,           default=24h"`
	// Store selects the backing storage: "memory" or "mongo".
	Store        string `env:"MOCKAPI_STORE,         default=memory"`
	SeedPassword string `env:"MOCKAPI_SEED_PASSWORD, default=password123"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=commuter_security"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through lookuper and validates the backend
// selectors.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}

	cfg.Console.TokenStore = strings.ToLower(strings.TrimSpace(cfg.Console.TokenStore))
	if cfg.Console.TokenStore != StoreMemory && cfg.Console.TokenStore != StoreRedis {
		return nil, fmt.Errorf("TOKEN_STORE must be %q or %q, got %q", StoreMemory, StoreRedis, cfg.Console.TokenStore)
	}
	cfg.MockAPI.Store = strings.ToLower(strings.TrimSpace(cfg.MockAPI.Store))
	if cfg.MockAPI.Store != StoreMemory && cfg.MockAPI.Store != StoreMongo {
		return nil, fmt.Errorf("MOCKAPI_STORE must be %q or %q, got %q", StoreMemory, StoreMongo, cfg.MockAPI.Store)
	}
	return &cfg, nil
}
