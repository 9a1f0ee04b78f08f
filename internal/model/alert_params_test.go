package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAlertParams(t *testing.T) {
	tests := []struct {
		name    string
		typ     AlertType
		raw     string
		want    AlertParams
		wantErr bool
	}{
		{name: "price", typ: AlertTypePrice, raw: `{"level":50000,"direction":"above"}`, want: PriceParams{Level: 50000, Direction: DirectionAbove}},
		{name: "pct move", typ: AlertTypePctMove, raw: `{"pct":5,"direction":"below"}`, want: PctMoveParams{Pct: 5, Direction: DirectionBelow}},
		{name: "aggregate empty", typ: AlertTypeBreakingNews, raw: ``, want: AggregateParams{}},
		{name: "aggregate null", typ: AlertTypeVolumeSpike, raw: `null`, want: AggregateParams{}},
		{name: "cross-type field rejected", typ: AlertTypePrice, raw: `{"level":1,"direction":"above","pct":5}`, wantErr: true},
		{name: "unknown type", typ: AlertType("moon"), raw: `{}`, wantErr: true},
		{name: "malformed", typ: AlertTypePrice, raw: `{"level":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAlertParams(tt.typ, []byte(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAlertParams)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeAlertParams(t *testing.T) {
	b, err := EncodeAlertParams(PriceParams{Level: 10, Direction: DirectionBelow})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":10,"direction":"below"}`, string(b))

	b, err = EncodeAlertParams(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestAlertIsSnoozed(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	assert.False(t, Alert{}.IsSnoozed(now))
	assert.True(t, Alert{SnoozeUntil: &future}.IsSnoozed(now))
	assert.False(t, Alert{SnoozeUntil: &past}.IsSnoozed(now))
	assert.False(t, Alert{SnoozeUntil: &now}.IsSnoozed(now))
}

func TestAlertTypeClassification(t *testing.T) {
	assert.True(t, AlertTypeTrendingNews.IsAggregate())
	assert.False(t, AlertTypePrice.IsAggregate())
	assert.True(t, AlertTypeVWAP.IsValid())
	assert.False(t, AlertType("").IsValid())

	assert.True(t, Alert{Type: AlertTypePrice, Symbol: "BTC"}.Evaluable())
	assert.False(t, Alert{Type: AlertTypePrice, Symbol: SymbolAll}.Evaluable())
	assert.False(t, Alert{Type: AlertTypePriceSpike, Symbol: SymbolAll}.Evaluable())
}

func TestPriceSnapshotClone(t *testing.T) {
	s := PriceSnapshot{Symbol: "BTC", Sparkline: []float64{1, 2}}
	c := s.Clone()
	c.Sparkline[0] = 9
	assert.Equal(t, 1.0, s.Sparkline[0])
}
