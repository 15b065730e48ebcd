package http

import (
	"threatmonitor-api/internal/model"
	"threatmonitor-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h handler) processCreateEventRequest(c *gin.Context) (model.Scope, createEventReq, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Errorf(ctx, "internal.event.delivery.http.processCreateEventRequest: missing scope in context")
		return model.Scope{}, createEventReq{}, errMissingScope
	}

	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.event.delivery.http.processCreateEventRequest.ShouldBindJSON: %v", err)
		return model.Scope{}, createEventReq{}, errWrongBody
	}

	return sc, req, nil
}

func (h handler) processGetEventsRequest(c *gin.Context) (model.Scope, getEventsReq, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Errorf(ctx, "internal.event.delivery.http.processGetEventsRequest: missing scope in context")
		return model.Scope{}, getEventsReq{}, errMissingScope
	}

	var req getEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.event.delivery.http.processGetEventsRequest.ShouldBindQuery: %v", err)
		return model.Scope{}, getEventsReq{}, errWrongQuery
	}
	req.Adjust()

	return sc, req, nil
}

func (h handler) processDetailRequest(c *gin.Context) (model.Scope, string, error) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		h.l.Errorf(ctx, "internal.event.delivery.http.processDetailRequest: missing scope in context")
		return model.Scope{}, "", errMissingScope
	}

	return sc, c.Param("id"), nil
}
