package usecase

import (
	"math"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/coinmarketcap"
)

const sparklinePoints = 24

func toSnapshot(q coinmarketcap.Quote, now time.Time) model.PriceSnapshot {
	updated := q.LastUpdated
	if updated.IsZero() {
		updated = now
	}
	high, low := dayRange(q.Price, q.PercentChange24h)
	return model.PriceSnapshot{
		Symbol:    q.Symbol,
		Name:      q.Name,
		CmcID:     q.ID,
		Rank:      q.Rank,
		Price:     q.Price,
		Change24h: q.PercentChange24h,
		Volume24h: q.Volume24h,
		MarketCap: q.MarketCap,
		High24h:   high,
		Low24h:    low,
		Sparkline: sparkline(q.Price, q.PercentChange24h),
		UpdatedAt: updated,
	}
}

// dayRange approximates the 24h range from the net change alone.
// The quote endpoint carries no intraday extremes.
func dayRange(price, changePct float64) (high, low float64) {
	swing := math.Abs(changePct) / 100
	return price * (1 + swing), price * (1 - swing)
}

// sparkline interpolates linearly from the price 24h ago to the current price.
// It is an approximation, not a price history.
func sparkline(price, changePct float64) []float64 {
	start := price
	if base := 1 + changePct/100; base > 0 {
		start = price / base
	}

	points := make([]float64, sparklinePoints)
	step := (price - start) / float64(sparklinePoints-1)
	for i := range points {
		points[i] = start + step*float64(i)
	}
	points[sparklinePoints-1] = price
	return points
}
