package main

import (
	"context"
	"fmt"

	"threatmonitor-api/config"
	"threatmonitor-api/config/postgre"
	configRedis "threatmonitor-api/config/redis"
	"threatmonitor-api/internal/httpserver"
	"threatmonitor-api/pkg/log"
	"threatmonitor-api/pkg/scope"

	goredis "github.com/redis/go-redis/v9"
)

// @Name ThreatMonitor API
// @description Security event ingestion and alert triage API.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	// Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Database)

	// Initialize Redis only when the shared rate limit store is enabled
	var redisClient *goredis.Client
	if cfg.RateLimit.Store == config.RateLimitStoreRedis {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect(redisClient)
		logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.Server.Port,
		Environment: cfg.Environment.Name,
		JWTManager:  scope.New(cfg.JWT.SecretKey),
		Database:    postgresDB,
		Redis:       redisClient,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
