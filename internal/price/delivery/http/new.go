package http

import (
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/pkg/discord"
	"cryptobuzz-srv/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      price.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc price.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
