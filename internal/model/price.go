package model

import (
	"slices"
	"time"
)

// PriceSnapshot is one quote for one symbol at one instant.
type PriceSnapshot struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	CmcID     int       `json:"cmcId"`
	Rank      int       `json:"rank"`
	Price     float64   `json:"price"`
	Change24h float64   `json:"change24h"`
	Volume24h float64   `json:"volume24h"`
	MarketCap float64   `json:"marketCap"`
	High24h   float64   `json:"high24h"`
	Low24h    float64   `json:"low24h"`
	Sparkline []float64 `json:"sparkline"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a copy that shares no memory with s.
func (s PriceSnapshot) Clone() PriceSnapshot {
	s.Sparkline = slices.Clone(s.Sparkline)
	return s
}
