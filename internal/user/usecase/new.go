package usecase

import (
	"cryptobuzz-srv/internal/user"
	"cryptobuzz-srv/internal/user/repository"
	pkgLog "cryptobuzz-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
