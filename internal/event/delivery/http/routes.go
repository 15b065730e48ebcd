package http

import (
	"threatmonitor-api/internal/middleware"
	"threatmonitor-api/internal/policy"

	"github.com/gin-gonic/gin"
)

// MapEventRoutes maps the event routes onto r. Every route requires an
// authenticated caller; ingestion additionally consumes the caller's
// request budget.
func MapEventRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := r.Group("/events", mw.Authorize(policy.ResourceEvent))
	{
		events.POST("", mw.RateLimit(), h.CreateEvent)
		events.GET("", h.GetEvents)
		events.GET("/:id", h.GetEventDetail)
	}
}
