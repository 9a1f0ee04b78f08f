package usecase

import (
	"context"
	"maps"
	"slices"
	"time"

	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/internal/alert/repository"
	"cryptobuzz-srv/internal/metrics"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/internal/stream"
)

type checkResult int

const (
	checkSkipped checkResult = iota
	checkEvaluated
	checkFired
)

func (uc *implUseCase) RunCheck(ctx context.Context) (alert.CheckOutput, error) {
	start := uc.clock()
	defer func() { metrics.EngineTickDuration.Observe(time.Since(start).Seconds()) }()

	alerts, err := uc.repo.ListActive(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.RunCheck.repo.ListActive: %v", err)
		metrics.EngineTicks.WithLabelValues("error").Inc()
		uc.reportTickFailure(ctx, "loading active alerts", err)
		return alert.CheckOutput{}, err
	}
	if len(alerts) == 0 {
		metrics.EngineTicks.WithLabelValues("empty").Inc()
		uc.tickFailing.Store(false)
		return alert.CheckOutput{}, nil
	}

	prices := map[string]model.PriceSnapshot{}
	if symbols := evaluableSymbols(alerts); len(symbols) > 0 {
		o, err := uc.prices.GetPrices(ctx, price.GetPricesInput{Symbols: symbols})
		if err != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.RunCheck.prices.GetPrices: %v", err)
			metrics.EngineTicks.WithLabelValues("error").Inc()
			uc.reportTickFailure(ctx, "fetching prices", err)
			return alert.CheckOutput{}, err
		}
		prices = o.Prices
	}

	previous := uc.snapshotLastPrices()
	now := uc.clock()

	var out alert.CheckOutput
	for _, a := range alerts {
		switch uc.checkOne(ctx, a, prices, previous, now) {
		case checkFired:
			out.Evaluated++
			out.Fired++
		case checkEvaluated:
			out.Evaluated++
		default:
			out.Skipped++
		}
	}

	uc.storeLastPrices(prices)
	metrics.EngineTicks.WithLabelValues("ok").Inc()
	uc.tickFailing.Store(false)

	if out.Fired > 0 {
		uc.l.Infof(ctx, "internal.alert.usecase.RunCheck: evaluated=%d fired=%d skipped=%d", out.Evaluated, out.Fired, out.Skipped)
	}
	return out, nil
}

// checkOne handles a single alert. A panic is confined to that alert and counts as a skip.
func (uc *implUseCase) checkOne(ctx context.Context, a model.Alert, prices map[string]model.PriceSnapshot, previous map[string]float64, now time.Time) (res checkResult) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.alert.usecase.checkOne: alert %s panicked: %v", a.ID, r)
			res = checkSkipped
		}
	}()

	if !a.Evaluable() {
		metrics.AlertEvaluations.WithLabelValues(alert.OutcomeOutOfLoop.String()).Inc()
		return checkSkipped
	}
	snap, ok := prices[a.Symbol]
	if !ok {
		uc.l.Debugf(ctx, "internal.alert.usecase.checkOne: no price for %s, alert %s skipped", a.Symbol, a.ID)
		return checkSkipped
	}
	if a.IsSnoozed(now) {
		return checkSkipped
	}

	var prev *float64
	if p, ok := previous[a.Symbol]; ok {
		prev = &p
	}

	outcome := alert.Evaluate(a, snap.Price, prev)
	metrics.AlertEvaluations.WithLabelValues(outcome.String()).Inc()

	if !outcome.Triggered() {
		switch outcome {
		case alert.OutcomeUnsupported:
			uc.l.Debugf(ctx, "internal.alert.usecase.checkOne: alert %s has unsupported type %s", a.ID, a.Type)
		case alert.OutcomeInvalid:
			uc.l.Warnf(ctx, "internal.alert.usecase.checkOne: alert %s has params that do not match type %s", a.ID, a.Type)
		}
		return checkEvaluated
	}

	if err := uc.fire(ctx, a, snap.Price, now); err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.checkOne.fire: alert %s: %v", a.ID, err)
		return checkEvaluated
	}
	return checkFired
}

// fire persists the trigger, deactivates the alert and fans the event out.
func (uc *implUseCase) fire(ctx context.Context, a model.Alert, current float64, now time.Time) error {
	f, deactivated, err := uc.repo.RecordFire(ctx, repository.RecordFireOptions{
		Alert:      a,
		Price:      current,
		FiredAt:    now,
		Deactivate: true,
	})
	if err != nil {
		return err
	}
	if !deactivated {
		uc.l.Infof(ctx, "internal.alert.usecase.fire: alert %s was disabled concurrently, fire kept", a.ID)
	}
	metrics.AlertFires.WithLabelValues(string(a.Type)).Inc()

	if err := uc.stream.BroadcastAlert(ctx, stream.AlertTriggeredInput{
		AlertID: a.ID,
		Symbol:  a.Symbol,
		Price:   current,
		Type:    a.Type,
	}); err != nil {
		uc.l.Warnf(ctx, "internal.alert.usecase.fire.stream.BroadcastAlert: %v", err)
	}

	uc.notify(ctx, a, f)
	return nil
}

func (uc *implUseCase) snapshotLastPrices() map[string]float64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return maps.Clone(uc.lastPrices)
}

// storeLastPrices records every price fetched this tick, whatever the outcomes were.
func (uc *implUseCase) storeLastPrices(prices map[string]model.PriceSnapshot) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for sym, s := range prices {
		uc.lastPrices[sym] = s.Price
	}
}

// evaluableSymbols is the sorted distinct symbol set of the per-symbol alerts.
func evaluableSymbols(alerts []model.Alert) []string {
	set := make(map[string]struct{}, len(alerts))
	for _, a := range alerts {
		if a.Evaluable() {
			set[a.Symbol] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}
