package usecase

import (
	"threatmonitor-api/internal/event"
	"threatmonitor-api/internal/event/repository"
	pkgLog "threatmonitor-api/pkg/log"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	promoter event.Promoter
}

func New(l pkgLog.Logger, repo repository.Repository, promoter event.Promoter) event.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		promoter: promoter,
	}
}
