package watchlist

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.Watch, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Watch, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// Symbols returns the distinct symbols watched by any user.
	Symbols(ctx context.Context) ([]string, error)
	Seed(ctx context.Context, sc model.Scope) (SeedOutput, error)
}
