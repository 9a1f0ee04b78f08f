package alert

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Alert, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Alert, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Alert, error)
	Snooze(ctx context.Context, sc model.Scope, ip SnoozeInput) (model.Alert, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	ListFires(ctx context.Context, sc model.Scope, ip ListFiresInput) (ListFiresOutput, error)
	ToggleRecommended(ctx context.Context, sc model.Scope, ip ToggleRecommendedInput) (model.Alert, error)

	// RunCheck evaluates every active alert against current prices once.
	RunCheck(ctx context.Context) (CheckOutput, error)
	// Shutdown waits for in-flight notifications, bounded by ctx.
	Shutdown(ctx context.Context) error
}
