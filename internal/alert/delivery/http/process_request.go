package http

import (
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h handler) processGetAlertsRequest(c *gin.Context) (model.Scope, getAlertsReq, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Errorf(ctx, "internal.alert.delivery.http.processGetAlertsRequest: missing scope in context")
		return model.Scope{}, getAlertsReq{}, errMissingScope
	}

	var req getAlertsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.processGetAlertsRequest.ShouldBindQuery: %v", err)
		return model.Scope{}, getAlertsReq{}, errWrongQuery
	}
	req.Adjust()

	return sc, req, nil
}

func (h handler) processDetailRequest(c *gin.Context) (model.Scope, string, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Errorf(ctx, "internal.alert.delivery.http.processDetailRequest: missing scope in context")
		return model.Scope{}, "", errMissingScope
	}

	return sc, c.Param("id"), nil
}

func (h handler) processUpdateStatusRequest(c *gin.Context) (model.Scope, string, updateAlertStatusReq, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Errorf(ctx, "internal.alert.delivery.http.processUpdateStatusRequest: missing scope in context")
		return model.Scope{}, "", updateAlertStatusReq{}, errMissingScope
	}

	var req updateAlertStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.processUpdateStatusRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, "", updateAlertStatusReq{}, errWrongBody
	}

	return sc, c.Param("id"), req, nil
}
