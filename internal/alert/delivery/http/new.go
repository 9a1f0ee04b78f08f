package http

import (
	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/pkg/discord"
	"cryptobuzz-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      alert.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc alert.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
