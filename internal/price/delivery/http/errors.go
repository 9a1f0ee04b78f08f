package http

import (
	"net/http"

	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/pkg/errors"
	"cryptobuzz-srv/pkg/response"
)

var (
	errWrongQuery   = errors.NewHTTPError(110001, "Wrong query", http.StatusBadRequest)
	errCoinNotFound = errors.NewHTTPError(110002, "Coin not found", http.StatusNotFound)
	errInvalidSym   = errors.NewHTTPError(110003, "Invalid symbol", http.StatusBadRequest)
)

var errMap = response.ErrorMapping{
	price.ErrCoinNotFound:  errCoinNotFound,
	price.ErrInvalidSymbol: errInvalidSym,
}
