package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/vapemart/vapemart/internal/app"
	"github.com/vapemart/vapemart/internal/availability"
	"github.com/vapemart/vapemart/internal/catalog/categories"
	"github.com/vapemart/vapemart/internal/catalog/products"
	"github.com/vapemart/vapemart/internal/catalog/tags"
	"github.com/vapemart/vapemart/internal/platform/cache"
	"github.com/vapemart/vapemart/internal/platform/db"
	"github.com/vapemart/vapemart/internal/stocksync"
	"github.com/vapemart/vapemart/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	productRepo := products.NewRepository(pool)
	categoryService := categories.NewService(categories.NewRepository(pool))
	tagService := tags.NewService(tags.NewRepository(pool))
	productService := products.NewService(productRepo, categoryService, tagService)

	availabilityService := availability.NewService(availability.NewRepository(pool))

	syncStore := stocksync.NewStore(redisClient, cfg.SyncJobTTL)
	syncService := stocksync.NewService(stocksync.Config{
		Logger:       logger,
		Store:        syncStore,
		Products:     productService,
		Stock:        availabilityService,
		WorkbookPath: cfg.SyncWorkbookPath,
	})
	syncJob := jobs.NewStockSyncHandler(syncService, logger)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskStockSync, Handler: syncJob.Handle},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
