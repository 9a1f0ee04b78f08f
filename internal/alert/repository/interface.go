package repository

import (
	"context"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Alert, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Alert, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.Alert, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Alert, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ListActive returns active alerts of every user.
	ListActive(ctx context.Context) ([]model.Alert, error)
	// RecordFire stores a fire and, when asked, deactivates the alert in the same transaction.
	// deactivated is false when the alert was no longer active at write time.
	RecordFire(ctx context.Context, opts RecordFireOptions) (fire model.AlertFire, deactivated bool, err error)
	ListFires(ctx context.Context, sc model.Scope, opts ListFiresOptions) ([]model.AlertFire, paginator.Paginator, error)
}
