package usecase

import (
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/internal/alert/repository"
	"cryptobuzz-srv/internal/news"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/discord"
	"cryptobuzz-srv/pkg/log"

	"github.com/go-playground/validator/v10"
)

const notifyTimeout = 15 * time.Second

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	prices   price.UseCase
	stream   stream.UseCase
	news     news.UseCase
	discord  discord.IDiscord
	validate *validator.Validate
	clock    func() time.Time

	// lastPrices is the price each symbol had at the end of the previous tick.
	mu         sync.Mutex
	lastPrices map[string]float64

	notifyWG sync.WaitGroup
	// tickFailing is set after a failed tick was reported, so an outage reports once.
	tickFailing atomic.Bool
}

var _ alert.UseCase = &implUseCase{}

// New wires the alert usecase. newsUC and d may be nil; notifications are then skipped or sent without headlines.
func New(l log.Logger, repo repository.Repository, prices price.UseCase, streamUC stream.UseCase, newsUC news.UseCase, d discord.IDiscord) alert.UseCase {
	return newUseCase(l, repo, prices, streamUC, newsUC, d)
}

func newUseCase(l log.Logger, repo repository.Repository, prices price.UseCase, streamUC stream.UseCase, newsUC news.UseCase, d discord.IDiscord) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		prices:     prices,
		stream:     streamUC,
		news:       newsUC,
		discord:    d,
		validate:   newValidator(),
		clock:      time.Now,
		lastPrices: make(map[string]float64),
	}
}

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
