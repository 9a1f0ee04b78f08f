package http

import (
	"net/http"

	"cryptobuzz-srv/internal/watchlist"
	"cryptobuzz-srv/pkg/errors"
	"cryptobuzz-srv/pkg/response"
)

var (
	errWrongBody     = errors.NewHTTPError(140001, "Wrong body", http.StatusBadRequest)
	errWatchNotFound = errors.NewHTTPError(140002, "Watch not found", http.StatusNotFound)
	errWatchExists   = errors.NewHTTPError(140003, "Symbol already in watchlist", http.StatusConflict)
	errInvalidSymbol = errors.NewHTTPError(140004, "Invalid symbol", http.StatusBadRequest)
	errInvalidCmcID  = errors.NewHTTPError(140005, "Invalid CoinMarketCap id", http.StatusBadRequest)
)

var errMap = response.ErrorMapping{
	watchlist.ErrWatchNotFound: errWatchNotFound,
	watchlist.ErrWatchExists:   errWatchExists,
	watchlist.ErrInvalidSymbol: errInvalidSymbol,
	watchlist.ErrInvalidCmcID:  errInvalidCmcID,
}
