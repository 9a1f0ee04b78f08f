package repository

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	GetOne(ctx context.Context, opts GetOneOptions) (model.User, error)
	// Create inserts the user unless the email is taken; the stored row is returned either way.
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
}
