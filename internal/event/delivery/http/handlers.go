package http

import (
	"threatmonitor-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// CreateEvent ingests a security event.
// @Summary Ingest a security event
// @Description Validates and persists a security event. HIGH and CRITICAL events are promoted to alerts.
// @Tags Event
// @Accept json
// @Produce json
// @Param body body createEventReq true "Event"
// @Success 201 {object} eventResp
// @Failure 400 {object} response.Resp "Validation error"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 429 {object} response.Resp "Rate limit exceeded"
// @Router /api/events [POST]
func (h handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateEventRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.Created(c, newEventResp(o.Event))
}

// GetEvents lists ingested events, newest first.
// @Summary List events
// @Tags Event
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} getEventsResp
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /api/events [GET]
func (h handler) GetEvents(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processGetEventsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newGetEventsResp(o))
}

// GetEventDetail returns a single event by ID.
// @Summary Get event detail
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} eventResp
// @Failure 404 {object} response.Resp "Not found"
// @Router /api/events/{id} [GET]
func (h handler) GetEventDetail(c *gin.Context) {
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

	response.OK(c, newEventResp(o.Event))
}
