package usecase

import (
	"fmt"
	"strconv"

	"cryptobuzz-srv/internal/model"
)

// describeCondition renders the trigger rule for humans, e.g. "price above 50000".
func describeCondition(a model.Alert) string {
	switch p := a.Params.(type) {
	case model.PriceParams:
		return fmt.Sprintf("price %s %s", p.Direction, formatFloat(p.Level))
	case model.PctMoveParams:
		sign := "+"
		if p.Direction == model.DirectionBelow {
			sign = "-"
		}
		return fmt.Sprintf("move %s%s%% between ticks", sign, formatFloat(p.Pct))
	case model.DayLevelsParams:
		return "day " + p.Side
	case model.VWAPParams:
		return fmt.Sprintf("price %s VWAP", p.Direction)
	case model.AggregateParams:
		return fmt.Sprintf("%s over %s", a.Type, formatFloat(p.Threshold))
	default:
		return string(a.Type)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
