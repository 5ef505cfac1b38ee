package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"admin-dashboard/internal/logger"
)

const (
	StoreMock  = "mock"
	StoreMongo = "mongo"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// StoreBackend elige entre datos de prueba en memoria y MongoDB
	StoreBackend string `envconfig:"STORE_BACKEND" default:"mock"`
	// StorePersist hace que el store en memoria conserve los registros creados
	StorePersist bool   `envconfig:"STORE_PERSIST" default:"false"`
	MongoURI     string `envconfig:"MONGO_URI"`
	MongoDB      string `envconfig:"MONGO_DB" default:"adminDashboard"`

	CacheBackend string        `envconfig:"CACHE_BACKEND" default:"memory"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"2m"`
	RedisURL     string        `envconfig:"REDIS_URL"`

	ListDelay       time.Duration `envconfig:"LIST_DELAY" default:"100ms"`
	CreateDelay     time.Duration `envconfig:"CREATE_DELAY" default:"500ms"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	PageSize        int           `envconfig:"PAGE_SIZE" default:"10"`
}

func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	// En producción las variables vienen del entorno
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreMock:
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_BACKEND=%s", StoreMongo)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	switch c.CacheBackend {
	case CacheMemory:
	case CacheRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=%s", CacheRedis)
		}
	default:
		return fmt.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend)
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	return nil
}

func (c *Config) Environment() logger.Environment {
	return logger.ParseEnvironment(c.AppEnv)
}
