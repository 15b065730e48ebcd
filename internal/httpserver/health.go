package httpserver

import (
	"threatmonitor-api/pkg/errors"
	"threatmonitor-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service and its dependencies are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "A dependency is unavailable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection failed", 503))
		return
	}

	deps := gin.H{"database": "connected"}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx).Err(); err != nil {
			response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed", 503))
			return
		}
		deps["redis"] = "connected"
	}

	response.OK(c, gin.H{
		"status":       "healthy",
		"service":      "threatmonitor-api",
		"dependencies": deps,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection not available", 503))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "threatmonitor-api",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the service process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "threatmonitor-api",
	})
}
