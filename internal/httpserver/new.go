package httpserver

import (
	"database/sql"
	"errors"

	"threatmonitor-api/config"
	"threatmonitor-api/pkg/log"
	"threatmonitor-api/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) starts HTTP serving and handles shutdown.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	environment string

	jwtManager scope.Manager

	db        *sql.DB
	redis     *redis.Client // nil when the in-memory rate limiter is used
	rateLimit config.RateLimitConfig
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port        int
	Environment string
	JWTManager  scope.Manager
	Database    *sql.DB
	Redis       *redis.Client
	RateLimit   config.RateLimitConfig
}

// New creates a new HTTPServer instance with the provided configuration.
// No goroutines are started here; use (*HTTPServer).Run().
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Environment == config.ProductionEnv {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           l,
		port:        cfg.Port,
		environment: cfg.Environment,
		jwtManager:  cfg.JWTManager,
		db:          cfg.Database,
		redis:       cfg.Redis,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("JWT manager is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.rateLimit.Store == config.RateLimitStoreRedis && srv.redis == nil {
		return errors.New("redis client is required for the redis rate limit store")
	}

	return nil
}
