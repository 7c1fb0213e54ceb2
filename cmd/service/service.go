package main

import (
	"context"
	"fmt"
	"os"

	"user-directory/internal/cache"
	"user-directory/internal/config"
	"user-directory/internal/database"
	"user-directory/internal/directory"
	"user-directory/internal/logger"
	"user-directory/internal/router"
	"user-directory/internal/schema"
	"user-directory/internal/source"
	"user-directory/internal/view"
	"user-directory/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	_ "user-directory/docs" // 引入 swag 產出的 docs
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newHTTPSource   = func(url string) source.Source { return source.NewHTTPSource(url, nil) }
	newRenderer     = view.NewRenderer
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.Debug)

	var (
		db  database.DB
		cch cache.Cache
		src source.Source
	)

	switch cfg.SourceKind {
	case config.SourcePostgres:
		pool, err := newPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("DB 連線失敗: %w", err)
		}
		defer pool.Close()

		if cfg.MigrateReset {
			log.Warn().Msg("MIGRATE_RESET 已設定，回滾所有 migration")
			if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("RollbackAll 失敗: %w", err)
			}
		}
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
		db = pool
		src = source.NewPostgresSource(pool)
	default:
		src = newHTTPSource(cfg.SourceURL)
	}

	if cfg.CacheEnabled() {
		rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("關閉 Redis 連線失敗")
			}
		}()
		cch = rdb
		src = source.NewCachedSource(src, rdb, cfg.CacheTTL)
	}

	v := validator.New()
	if err := schema.RegisterValidation(v); err != nil {
		return fmt.Errorf("註冊驗證規則失敗: %w", err)
	}

	renderer, err := newRenderer()
	if err != nil {
		return fmt.Errorf("載入模板失敗: %w", err)
	}

	dir := directory.New()

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	// 服務結束時中止仍在進行的初始載入
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Submit(func() { dir.Load(ctx, src) })

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Validator = &CustomValidator{validator: v}
	e.Renderer = renderer
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, dir, db, cch)

	log.Info().Str("addr", cfg.Addr).Str("source", cfg.SourceKind).Bool("cache", cch != nil).Msg("starting server")
	return startServer(e, cfg.Addr)
}
