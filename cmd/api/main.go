package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"rfq-agent/config"
	_ "rfq-agent/docs" // Swagger docs
	"rfq-agent/internal/httpserver"
	"rfq-agent/pkg/log"
)

// @title       RFQ Agent API
// @description Rule-based RFQ generator: classifies procurement queries and returns templated line items.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting RFQ Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Redis (optional shared result cache)
	var redisClient *goredis.Client
	if cfg.Cache.Enabled && cfg.Redis.Addr != "" {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			logger.Warnf(ctx, "Redis at %s not reachable yet: %v", cfg.Redis.Addr, pingErr)
		} else {
			logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr)
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Cache:          cfg.Cache,
		Redis:          redisClient,
		RedisKeyPrefix: cfg.Redis.KeyPrefix,
		RateLimit:      cfg.RateLimit,
		MetricsEnabled: cfg.Metrics.Enabled,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
