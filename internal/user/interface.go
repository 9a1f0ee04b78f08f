package user

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// EnsureDefault returns the user owning email, creating it on first call.
	EnsureDefault(ctx context.Context, email string) (model.User, error)
}
