package http

import (
	"net/http"

	"cryptobuzz-srv/internal/news"
	"cryptobuzz-srv/pkg/errors"
	"cryptobuzz-srv/pkg/response"
)

var (
	errWrongQuery      = errors.NewHTTPError(130001, "Wrong query", http.StatusBadRequest)
	errInvalidCurrency = errors.NewHTTPError(130002, "Invalid currency", http.StatusBadRequest)
)

var errMap = response.ErrorMapping{
	news.ErrInvalidCurrency: errInvalidCurrency,
}
