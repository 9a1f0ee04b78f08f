package repository

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope) ([]model.Watch, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Watch, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Symbols(ctx context.Context) ([]string, error)
}
