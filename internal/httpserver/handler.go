package httpserver

import (
	"threatmonitor-api/config"
	alertHTTP "threatmonitor-api/internal/alert/delivery/http"
	alertPostgres "threatmonitor-api/internal/alert/repository/postgre"
	alertUsecase "threatmonitor-api/internal/alert/usecase"
	eventHTTP "threatmonitor-api/internal/event/delivery/http"
	eventPostgres "threatmonitor-api/internal/event/repository/postgre"
	eventUsecase "threatmonitor-api/internal/event/usecase"
	"threatmonitor-api/internal/middleware"
	"threatmonitor-api/internal/ratelimit"
)

const Api = "/api"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.l))

	corsConfig := middleware.DefaultCORSConfig()
	srv.gin.Use(middleware.CORS(corsConfig))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Repositories
	eventRepo := eventPostgres.New(srv.l, srv.db)
	alertRepo := alertPostgres.New(srv.l, srv.db)

	// Usecases. The alert usecase doubles as the promotion hook for
	// event ingestion.
	alertUC := alertUsecase.New(srv.l, alertRepo)
	eventUC := eventUsecase.New(srv.l, eventRepo, alertUC)

	// Handlers
	eventHandler := eventHTTP.New(srv.l, eventUC)
	alertHandler := alertHTTP.New(srv.l, alertUC)

	mw := middleware.New(srv.l, srv.jwtManager, srv.buildLimiter())

	api := srv.gin.Group(Api, mw.Auth())
	eventHTTP.MapEventRoutes(api, eventHandler, mw)
	alertHTTP.MapAlertRoutes(api, alertHandler, mw)

	return nil
}

func (srv *HTTPServer) buildLimiter() ratelimit.Limiter {
	if srv.rateLimit.Store == config.RateLimitStoreRedis {
		return ratelimit.NewRedis(srv.redis, srv.rateLimit.RequestsPerMinute)
	}
	return ratelimit.NewMemory(srv.rateLimit.RequestsPerMinute)
}
