package usecase

import (
	"cryptobuzz-srv/internal/news"
	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/internal/watchlist"
	"cryptobuzz-srv/internal/watchlist/repository"
	"cryptobuzz-srv/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	stream stream.UseCase
	news   news.UseCase
}

var _ watchlist.UseCase = &implUseCase{}

// New wires the watchlist usecase. newsUC may be nil, in which case Seed skips the news fetch.
func New(l log.Logger, repo repository.Repository, streamUC stream.UseCase, newsUC news.UseCase) watchlist.UseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		stream: streamUC,
		news:   newsUC,
	}
}
