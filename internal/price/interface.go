package price

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetPrices never fails on upstream trouble: it degrades to cached values and omits unknown symbols.
	GetPrices(ctx context.Context, ip GetPricesInput) (GetPricesOutput, error)
	GetPrice(ctx context.Context, symbol string) (model.PriceSnapshot, error)
	GetTopCoins(ctx context.Context, ip GetTopCoinsInput) ([]model.PriceSnapshot, error)
}
