// Package config 從環境變數讀取服務設定
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"

	DefaultSourceURL = "https://mocki.io/v1/a6a0fb6b-a84a-4934-b3f2-5c92cc77c44e"
)

// Config 服務設定。REDIS_ADDR 為空時不啟用快取。
type Config struct {
	Addr string `env:"ADDR" env-default:":8080" validate:"required"`

	SourceKind  string `env:"SOURCE_KIND" env-default:"http" validate:"oneof=http postgres"`
	SourceURL   string `env:"SOURCE_URL" env-default:"https://mocki.io/v1/a6a0fb6b-a84a-4934-b3f2-5c92cc77c44e" validate:"required_if=SourceKind http"`
	DatabaseURL string `env:"DATABASE_URL" validate:"required_if=SourceKind postgres"`
	// MigrateReset 啟動時先回滾所有 migration 再重跑，只用於開發環境
	MigrateReset bool `env:"MIGRATE_RESET" env-default:"false"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0" validate:"gte=0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" env-default:"5m"`

	WorkerCount int    `env:"WORKER_COUNT" env-default:"1" validate:"gte=1"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	Debug       bool   `env:"DEBUG" env-default:"false"`
}

var validate = validator.New()

// Load 讀取並驗證設定
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("讀取環境變數失敗: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("無效的設定: %w", err)
	}
	return &cfg, nil
}

// CacheEnabled 是否設定了 Redis
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
