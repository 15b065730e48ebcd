package http

import (
	"threatmonitor-api/internal/event"
	"threatmonitor-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  log.Logger
	uc event.UseCase
}

type Handler interface {
	CreateEvent(c *gin.Context)
	GetEvents(c *gin.Context)
	GetEventDetail(c *gin.Context)
}

func New(l log.Logger, uc event.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
