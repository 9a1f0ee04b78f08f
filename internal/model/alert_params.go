package model

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var ErrInvalidAlertParams = errors.New("invalid alert params")

// AlertParams is the type-specific configuration of an alert.
// The concrete type always matches Alert.Type.
type AlertParams interface {
	isAlertParams()
}

type PriceParams struct {
	Level     float64   `json:"level" validate:"gt=0"`
	Direction Direction `json:"direction" validate:"oneof=above below"`
}

type PctMoveParams struct {
	Pct        float64   `json:"pct" validate:"gt=0,lte=1000"`
	Direction  Direction `json:"direction" validate:"oneof=above below"`
	WindowMins int       `json:"windowMins,omitempty" validate:"gte=0,lte=1440"`
}

type DayLevelsParams struct {
	Side string `json:"side" validate:"oneof=high low both"`
}

type VWAPParams struct {
	Direction  Direction `json:"direction" validate:"oneof=above below"`
	WindowMins int       `json:"windowMins,omitempty" validate:"gte=0,lte=1440"`
}

// AggregateParams is shared by the market-wide alert types.
type AggregateParams struct {
	Threshold  float64 `json:"threshold,omitempty" validate:"gte=0"`
	WindowMins int     `json:"windowMins,omitempty" validate:"gte=0,lte=1440"`
}

func (PriceParams) isAlertParams()     {}
func (PctMoveParams) isAlertParams()   {}
func (DayLevelsParams) isAlertParams() {}
func (VWAPParams) isAlertParams()      {}
func (AggregateParams) isAlertParams() {}

// DecodeAlertParams picks the variant from t and rejects fields that belong to another variant.
func DecodeAlertParams(t AlertType, raw []byte) (AlertParams, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		raw = []byte("{}")
	}

	switch t {
	case AlertTypePrice:
		return decodeStrict[PriceParams](raw)
	case AlertTypePctMove:
		return decodeStrict[PctMoveParams](raw)
	case AlertTypeDayLevels:
		return decodeStrict[DayLevelsParams](raw)
	case AlertTypeVWAP:
		return decodeStrict[VWAPParams](raw)
	default:
		if t.IsAggregate() {
			return decodeStrict[AggregateParams](raw)
		}
		return nil, fmt.Errorf("%w: unknown alert type %q", ErrInvalidAlertParams, t)
	}
}

func decodeStrict[T AlertParams](raw []byte) (AlertParams, error) {
	var p T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlertParams, err)
	}
	return p, nil
}

// EncodeAlertParams renders params as the JSON object stored with the alert.
func EncodeAlertParams(p AlertParams) ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}
