package http

import (
	"threatmonitor-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetAlerts lists alerts with optional status and severity filters.
// @Summary List alerts
// @Description Lists alerts, newest first by default. Unknown filter and ordering values are ignored.
// @Tags Alert
// @Produce json
// @Param status query string false "Filter by status (OPEN, ACKNOWLEDGED, RESOLVED)"
// @Param severity query string false "Filter by triggering event severity"
// @Param ordering query string false "Sort key (created_at, -created_at, status, -status)"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} getAlertsResp
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /api/alerts [GET]
func (h handler) GetAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processGetAlertsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newGetAlertsResp(o))
}

// GetAlertDetail returns a single alert by ID.
// @Summary Get alert detail
// @Tags Alert
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} alertResp
// @Failure 404 {object} response.Resp "Not found"
// @Router /api/alerts/{id} [GET]
func (h handler) GetAlertDetail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processDetailRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newAlertResp(o.Alert))
}

// UpdateAlertStatus changes an alert's lifecycle status.
// @Summary Update alert status
// @Description Sets the alert status to ACKNOWLEDGED or RESOLVED.
// @Tags Alert
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param body body updateAlertStatusReq true "New status"
// @Success 200 {object} alertResp
// @Failure 400 {object} response.Resp "Validation error"
// @Failure 403 {object} response.Resp "Forbidden"
// @Failure 404 {object} response.Resp "Not found"
// @Router /api/alerts/{id} [PATCH]
func (h handler) UpdateAlertStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, req, err := h.processUpdateStatusRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.UpdateStatus(ctx, sc, req.toInput(id))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newAlertResp(o.Alert))
}
