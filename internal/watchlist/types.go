package watchlist

import "cryptobuzz-srv/internal/model"

type CreateInput struct {
	Symbol string
	CmcID  *int
	Name   string
}

type SeedOutput struct {
	Watches    []model.Watch
	NewsStored int
}

// DemoCoins seeds a fresh demo account.
var DemoCoins = []CreateInput{
	{Symbol: "BTC", CmcID: cmcID(1), Name: "Bitcoin"},
	{Symbol: "ETH", CmcID: cmcID(1027), Name: "Ethereum"},
	{Symbol: "SOL", CmcID: cmcID(5426), Name: "Solana"},
}

func cmcID(id int) *int { return &id }
