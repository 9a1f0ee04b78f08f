package middleware

import (
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/log"
)

type Middleware struct {
	l            log.Logger
	defaultScope model.Scope
}

// New builds the middleware set. defaultScope is the implicit demo identity used when a request names none.
func New(l log.Logger, defaultScope model.Scope) Middleware {
	return Middleware{
		l:            l,
		defaultScope: defaultScope,
	}
}
