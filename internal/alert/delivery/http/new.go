package http

import (
	"threatmonitor-api/internal/alert"
	"threatmonitor-api/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  log.Logger
	uc alert.UseCase
}

type Handler interface {
	GetAlerts(c *gin.Context)
	GetAlertDetail(c *gin.Context)
	UpdateAlertStatus(c *gin.Context)
}

func New(l log.Logger, uc alert.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
