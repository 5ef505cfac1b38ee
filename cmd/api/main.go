package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/charts"
	"admin-dashboard/internal/config"
	"admin-dashboard/internal/handlers"
	"admin-dashboard/internal/logger"
	"admin-dashboard/internal/middleware"
	"admin-dashboard/internal/mockdata"
	"admin-dashboard/internal/repository"
	"admin-dashboard/internal/routes"
	"admin-dashboard/internal/service"
)

const serviceName = "admin-dashboard"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zl, err := logger.New(cfg.Environment(), cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	// cleanup acumula los cierres de recursos para el apagado
	cleanup := map[string]gfshutdown.Operation{}

	productStore, orderStore, err := openStores(ctx, cfg, zl, cleanup)
	if err != nil {
		zl.Fatal("Failed to open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}

	responseCache, err := openCache(ctx, cfg)
	if err != nil {
		zl.Fatal("Failed to open cache", zap.String("backend", cfg.CacheBackend), zap.Error(err))
	}
	cleanup["cache"] = func(context.Context) error { return responseCache.Close() }

	fixture, err := charts.Default()
	if err != nil {
		zl.Warn("Chart fixture unavailable, charts will be empty", zap.Error(err))
	}

	opts := service.Options{
		ListDelay:   cfg.ListDelay,
		CreateDelay: cfg.CreateDelay,
		Logger:      zl,
	}
	productHandler := handlers.NewProductHandler(service.NewProductService(productStore, opts), responseCache, zl, cfg.PageSize)
	orderHandler := handlers.NewOrderHandler(service.NewOrderService(orderStore, productStore, opts), responseCache, zl, cfg.PageSize)

	if cfg.Environment().IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zl))

	routes.RegisterRoutes(router, routes.Handlers{
		Products:  productHandler,
		Orders:    orderHandler,
		Dashboard: handlers.NewDashboardHandler(productHandler, orderHandler, fixture, responseCache, zl),
		Charts:    handlers.NewChartHandler(fixture, zl),
		Health:    handlers.NewHealthHandler(serviceName, cfg.StoreBackend, cfg.CacheBackend, responseCache),
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zl.Info("🚀 Server running",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.AppEnv),
			zap.String("store", cfg.StoreBackend),
			zap.Bool("store_persist", cfg.StorePersist),
			zap.String("cache", cfg.CacheBackend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	cleanup["http-server"] = func(ctx context.Context) error {
		zl.Info("Shutting down server...")
		return server.Shutdown(ctx)
	}

	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, cleanup)

	exitCode := <-wait
	zl.Info("Application exited", zap.Int("code", exitCode))
	_ = zl.Sync()
	os.Exit(exitCode)
}

func openStores(ctx context.Context, cfg *config.Config, zl *zap.Logger, cleanup map[string]gfshutdown.Operation) (repository.ProductStore, repository.OrderStore, error) {
	if cfg.StoreBackend != config.StoreMongo {
		return repository.NewMemoryProductStore(mockdata.Products(), cfg.StorePersist),
			repository.NewMemoryOrderStore(mockdata.Orders(), cfg.StorePersist),
			nil
	}

	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	cleanup["mongo"] = client.Disconnect

	db := client.Database(cfg.MongoDB)
	products := repository.NewMongoProductStore(db)
	orders := repository.NewMongoOrderStore(db)

	if err := products.Seed(ctx, mockdata.Products()); err != nil {
		zl.Warn("Failed to seed products", zap.Error(err))
	}
	if err := orders.Seed(ctx, mockdata.Orders()); err != nil {
		zl.Warn("Failed to seed orders", zap.Error(err))
	}
	return products, orders, nil
}

func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	if cfg.CacheBackend == config.CacheRedis {
		c, err := cache.NewRedis(ctx, cfg.RedisURL, serviceName+":", cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return cache.NewMemory(cfg.CacheTTL), nil
}
