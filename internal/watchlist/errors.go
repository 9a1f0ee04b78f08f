package watchlist

import "errors"

var (
	ErrWatchNotFound = errors.New("watch not found")
	ErrWatchExists   = errors.New("symbol already in watchlist")
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidCmcID  = errors.New("invalid coinmarketcap id")
)
