package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	GuardMemory = "memory"
	GuardRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=8001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET, default=rh-kajian-secret-key"`
	// JWTTTL of zero issues tokens without an expiry.
	JWTTTL time.Duration `env:"JWT_TTL, default=0s"`

	FrontendURL    string            `env:"FRONTEND_URL,    default=http://localhost:3000"`
	CORSOrigins    []string          `env:"CORS_ORIGINS,    default=*"`
	SeedAdmins     map[string]string `env:"SEED_ADMINS,     default=adminrh:cintaquran,pesmarh:rhmantab"`
	RequestTimeout time.Duration     `env:"REQUEST_TIMEOUT, default=10s"`
	QRSize         int               `env:"QR_SIZE,         default=256"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Admission AdmissionConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URL, default=mongodb://localhost:27017"`
	Database string `env:"DB_NAME,   default=kajian_rh"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	PoolSize int           `env:"REDIS_POOL_SIZE, default=10"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,   default=5s"`
}

type AdmissionConfig struct {
	Guard   string        `env:"ADMISSION_GUARD,    default=memory"`
	Workers int           `env:"ADMISSION_WORKERS,  default=8"`
	LockTTL time.Duration `env:"ADMISSION_LOCK_TTL, default=5s"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c *Config) UsesRedis() bool {
	return c.Admission.Guard == GuardRedis
}

// Load reads configuration from environment variables using go-envconfig.
// Outside production a .env file in the working directory is loaded first;
// variables already set in the environment win.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), nil)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom is Load with an explicit lookuper. A nil lookuper reads the
// process environment.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	if lookuper == nil {
		if !strings.EqualFold(os.Getenv("ENV"), "production") {
			_ = godotenv.Load()
		}
		lookuper = envconfig.OsLookuper()
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}

	switch cfg.Admission.Guard {
	case GuardMemory, GuardRedis:
	default:
		return nil, fmt.Errorf("ADMISSION_GUARD must be %q or %q, got %q", GuardMemory, GuardRedis, cfg.Admission.Guard)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	return &cfg, nil
}
