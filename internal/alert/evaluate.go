package alert

import "cryptobuzz-srv/internal/model"

// Outcome is the result of evaluating one alert against one price.
type Outcome int

const (
	OutcomeNotMet Outcome = iota
	OutcomeTriggered
	// OutcomeNoBaseline means a relative condition had no usable previous price.
	OutcomeNoBaseline
	// OutcomeUnsupported marks types whose evaluation is not implemented yet.
	OutcomeUnsupported
	// OutcomeOutOfLoop marks aggregate types, which the per-symbol loop never evaluates.
	OutcomeOutOfLoop
	// OutcomeInvalid means the params do not match the alert type.
	OutcomeInvalid
)

var outcomeNames = map[Outcome]string{
	OutcomeNotMet:      "not_met",
	OutcomeTriggered:   "triggered",
	OutcomeNoBaseline:  "no_baseline",
	OutcomeUnsupported: "unsupported",
	OutcomeOutOfLoop:   "out_of_loop",
	OutcomeInvalid:     "invalid",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

func (o Outcome) Triggered() bool { return o == OutcomeTriggered }

// Evaluate decides whether a fires at current. previous is the price seen on the prior tick, if any.
// It performs no I/O and does not look at Active or SnoozeUntil.
func Evaluate(a model.Alert, current float64, previous *float64) Outcome {
	if a.Type.IsAggregate() {
		return OutcomeOutOfLoop
	}

	switch a.Type {
	case model.AlertTypePrice:
		p, ok := a.Params.(model.PriceParams)
		if !ok {
			return OutcomeInvalid
		}
		return evaluatePrice(p, current)

	case model.AlertTypePctMove:
		p, ok := a.Params.(model.PctMoveParams)
		if !ok {
			return OutcomeInvalid
		}
		return evaluatePctMove(p, current, previous)

	case model.AlertTypeDayLevels, model.AlertTypeVWAP:
		return OutcomeUnsupported

	default:
		return OutcomeInvalid
	}
}

func evaluatePrice(p model.PriceParams, current float64) Outcome {
	var hit bool
	switch p.Direction {
	case model.DirectionAbove:
		hit = current >= p.Level
	case model.DirectionBelow:
		hit = current <= p.Level
	default:
		return OutcomeInvalid
	}
	if hit {
		return OutcomeTriggered
	}
	return OutcomeNotMet
}

func evaluatePctMove(p model.PctMoveParams, current float64, previous *float64) Outcome {
	if previous == nil || *previous <= 0 {
		return OutcomeNoBaseline
	}

	chg := (current - *previous) * 100 / *previous
	var hit bool
	switch p.Direction {
	case model.DirectionAbove:
		hit = chg >= p.Pct
	case model.DirectionBelow:
		hit = chg <= -p.Pct
	default:
		return OutcomeInvalid
	}
	if hit {
		return OutcomeTriggered
	}
	return OutcomeNotMet
}
