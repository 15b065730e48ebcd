package usecase

import (
	"threatmonitor-api/internal/alert"
	"threatmonitor-api/internal/alert/repository"
	"threatmonitor-api/pkg/log"
)

type usecase struct {
	l    log.Logger
	repo repository.Repository
}

func New(l log.Logger, repo repository.Repository) alert.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
