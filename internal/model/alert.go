package model

import "time"

type AlertType string

const (
	AlertTypePrice     AlertType = "price"
	AlertTypePctMove   AlertType = "pct_move"
	AlertTypeDayLevels AlertType = "day_levels"
	AlertTypeVWAP      AlertType = "vwap"

	AlertTypeTrendingNews AlertType = "trending_news"
	AlertTypeBreakingNews AlertType = "breaking_news"
	AlertTypePriceSpike   AlertType = "price_spike"
	AlertTypeVolumeSpike  AlertType = "volume_spike"
	AlertTypeTradingSpike AlertType = "trading_spike"
)

// SymbolAll is the symbol carried by aggregate alerts.
const SymbolAll = "ALL"

var alertTypes = map[AlertType]bool{
	AlertTypePrice:        false,
	AlertTypePctMove:      false,
	AlertTypeDayLevels:    false,
	AlertTypeVWAP:         false,
	AlertTypeTrendingNews: true,
	AlertTypeBreakingNews: true,
	AlertTypePriceSpike:   true,
	AlertTypeVolumeSpike:  true,
	AlertTypeTradingSpike: true,
}

func (t AlertType) IsValid() bool {
	_, ok := alertTypes[t]
	return ok
}

// IsAggregate reports whether the type watches the market as a whole rather than one symbol.
func (t AlertType) IsAggregate() bool {
	return alertTypes[t]
}

type Direction string

const (
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
)

type Alert struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Symbol      string      `json:"symbol"`
	Type        AlertType   `json:"type"`
	Params      AlertParams `json:"params"`
	Active      bool        `json:"active"`
	SnoozeUntil *time.Time  `json:"snoozeUntil"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// IsSnoozed is true while SnoozeUntil lies in the future. Expiry needs no write.
func (a Alert) IsSnoozed(now time.Time) bool {
	return a.SnoozeUntil != nil && a.SnoozeUntil.After(now)
}

// Evaluable reports whether the per-symbol price loop owns this alert.
func (a Alert) Evaluable() bool {
	return !a.Type.IsAggregate() && a.Symbol != SymbolAll
}
