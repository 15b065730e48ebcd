package http

import (
	"threatmonitor-api/internal/middleware"
	"threatmonitor-api/internal/policy"

	"github.com/gin-gonic/gin"
)

// MapAlertRoutes maps the alert routes onto r. Reads are open to admins
// and analysts, status changes to admins only; the policy table decides.
func MapAlertRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Authorize(policy.ResourceAlert))
	{
		alerts.GET("", h.GetAlerts)
		alerts.GET("/:id", h.GetAlertDetail)
		alerts.PATCH("/:id", h.UpdateAlertStatus)
	}
}
