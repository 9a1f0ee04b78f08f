package price

import "errors"

var (
	ErrCoinNotFound  = errors.New("coin not found")
	ErrInvalidSymbol = errors.New("invalid symbol")
)
