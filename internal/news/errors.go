package news

import "errors"

var (
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrNoNews          = errors.New("no news available")
)
