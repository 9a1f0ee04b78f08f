package usecase

import (
	"context"
	"fmt"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/discord"
)

// notify posts the fire to Discord in the background. The engine never waits on the webhook.
func (uc *implUseCase) notify(ctx context.Context, a model.Alert, f model.AlertFire) {
	if uc.discord == nil {
		return
	}

	msg := discord.PriceAlert{
		AlertID:   a.ID,
		Symbol:    a.Symbol,
		AlertType: string(a.Type),
		Condition: describeCondition(a),
		Price:     f.Price,
		FiredAt:   f.FiredAt,
	}

	uc.notifyWG.Add(1)
	go func() {
		defer uc.notifyWG.Done()

		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if uc.news != nil {
			if item, ok := uc.news.HeadlineFor(nctx, a.Symbol); ok {
				msg.Headline = item.Title
				msg.NewsURL = item.URL
			}
		}

		if err := uc.discord.SendPriceAlert(nctx, msg); err != nil {
			uc.l.Warnf(nctx, "internal.alert.usecase.notify.SendPriceAlert: alert %s: %v", a.ID, err)
		}
	}()
}

// reportTickFailure posts to Discord when the engine goes from healthy to failing.
// Consecutive failed ticks report once; the next successful tick re-arms it.
func (uc *implUseCase) reportTickFailure(ctx context.Context, stage string, err error) {
	if uc.discord == nil || uc.tickFailing.Swap(true) {
		return
	}

	uc.notifyWG.Add(1)
	go func() {
		defer uc.notifyWG.Done()

		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		desc := fmt.Sprintf("The alert engine tick failed while %s. Alerts are not evaluated until it recovers.", stage)
		if serr := uc.discord.SendError(nctx, "Alert engine tick failed", desc, err); serr != nil {
			uc.l.Warnf(nctx, "internal.alert.usecase.reportTickFailure.SendError: %v", serr)
		}
	}()
}

// Shutdown waits for background Discord posts, bounded by ctx.
func (uc *implUseCase) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.notifyWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
