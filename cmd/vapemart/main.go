package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/vapemart/vapemart/internal/app"
	"github.com/vapemart/vapemart/internal/auth"
	"github.com/vapemart/vapemart/internal/availability"
	"github.com/vapemart/vapemart/internal/catalog/brands"
	"github.com/vapemart/vapemart/internal/catalog/categories"
	"github.com/vapemart/vapemart/internal/catalog/locations"
	"github.com/vapemart/vapemart/internal/catalog/products"
	"github.com/vapemart/vapemart/internal/catalog/tags"
	"github.com/vapemart/vapemart/internal/outreach"
	"github.com/vapemart/vapemart/internal/platform/cache"
	"github.com/vapemart/vapemart/internal/platform/db"
	"github.com/vapemart/vapemart/internal/shared"
	"github.com/vapemart/vapemart/internal/stocksync"
	"github.com/vapemart/vapemart/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	sessionManager := shared.NewSessionManager(redisClient, "vapemart_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager)
	adminGate := auth.Middleware{Service: authService, Logger: logger}.RequireAdmin

	categoryRepo := categories.NewRepository(pool)
	categoryService := categories.NewService(categoryRepo)
	categoriesHandler := categories.NewHandler(logger, categoryService, adminGate)

	brandRepo := brands.NewRepository(pool)
	brandService := brands.NewService(brandRepo)
	brandsHandler := brands.NewHandler(logger, brandService, adminGate)

	locationRepo := locations.NewRepository(pool)
	locationService := locations.NewService(locationRepo)
	locationsHandler := locations.NewHandler(logger, locationService, adminGate)

	tagRepo := tags.NewRepository(pool)
	tagService := tags.NewService(tagRepo)
	tagsHandler := tags.NewHandler(logger, tagService, adminGate)

	productRepo := products.NewRepository(pool)
	productService := products.NewService(productRepo, categoryService, tagService)
	productsHandler := products.NewHandler(logger, productService, adminGate)

	availabilityRepo := availability.NewRepository(pool)
	availabilityService := availability.NewService(availabilityRepo)
	availabilityHandler := availability.NewHandler(logger, availabilityService, productService, adminGate)

	outreachHandler := outreach.NewHandler(logger, outreach.NewRepository(pool))

	queueClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init queue client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := queueClient.Close(); err != nil {
			logger.Warn("queue client close", slog.Any("error", err))
		}
	}()

	syncStore := stocksync.NewStore(redisClient, cfg.SyncJobTTL)
	syncService := stocksync.NewService(stocksync.Config{
		Logger:       logger,
		Store:        syncStore,
		Products:     productService,
		Stock:        availabilityService,
		Enqueuer:     queueClient,
		WorkbookPath: cfg.SyncWorkbookPath,
	})
	syncHandler := stocksync.NewHandler(logger, syncService, adminGate)

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		SessionManager:      sessionManager,
		AuthHandler:         authHandler,
		CategoriesHandler:   categoriesHandler,
		BrandsHandler:       brandsHandler,
		LocationsHandler:    locationsHandler,
		TagsHandler:         tagsHandler,
		ProductsHandler:     productsHandler,
		AvailabilityHandler: availabilityHandler,
		SyncHandler:         syncHandler,
		OutreachHandler:     outreachHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
