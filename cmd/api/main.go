// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/domain/checkout"
	"github.com/your-org/storefront-api/internal/domain/session"
	"github.com/your-org/storefront-api/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-api/internal/infrastructure/storage"
	httpserver "github.com/your-org/storefront-api/internal/interfaces/http"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-api/internal/interfaces/http/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg)
	logger.WithField("version", cfg.App.Version).
		WithField("environment", cfg.App.Environment).
		Infof("Starting %s", cfg.App.Name)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Durable client state: two fixed namespaces under one prefix,
	// one for carts and one for sessions
	store := storage.NewRedis(redisClient.GetClient(), "storefront:", 0)

	// Catalog client with a Redis cache in front
	var cat catalog.Catalog = catalog.NewClient(cfg.Catalog, logger)
	cat = catalog.NewCachedCatalog(cat, redisClient.GetClient(), cfg.Catalog.CacheTTL, logger)

	deps := routes.Deps{
		Config:   cfg,
		Catalog:  cat,
		Carts:    cart.NewManager(store),
		Sessions: session.NewManager(store),
		Checkout: checkout.NewService(cfg.Checkout),
		Logger:   logger,
	}

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, redisClient.GetClient(), deps)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logger.Info("Server shutdown completed")
}
