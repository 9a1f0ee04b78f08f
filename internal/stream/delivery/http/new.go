package http

import (
	"context"

	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/log"

	"github.com/gorilla/websocket"
)

type WSConfig struct {
	ReadBufferSize  int
	WriteBufferSize int
	AllowedOrigins  []string
}

type Handler struct {
	l        log.Logger
	uc       stream.UseCase
	upgrader websocket.Upgrader
}

func New(l log.Logger, uc stream.UseCase, cfg WSConfig, environment string) *Handler {
	if environment == "" {
		environment = envProduction
	}
	if environment == envProduction {
		l.Infof(context.Background(), "internal.stream.delivery.http.New: origin policy production (configured origins only)")
	} else {
		l.Infof(context.Background(), "internal.stream.delivery.http.New: origin policy %s (also localhost and private networks)", environment)
	}

	return &Handler{
		l:        l,
		uc:       uc,
		upgrader: createUpgrader(cfg, environment),
	}
}
