package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/user"
	"cryptobuzz-srv/internal/user/repository"
)

func (uc *usecase) EnsureDefault(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return model.User{}, user.ErrInvalidEmail
	}

	u, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Email: email})
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "internal.user.usecase.EnsureDefault.repo.GetOne: %v", err)
		return model.User{}, err
	}

	u, err = uc.repo.Create(ctx, repository.CreateOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.EnsureDefault.repo.Create: %v", err)
		return model.User{}, err
	}
	uc.l.Infof(ctx, "internal.user.usecase.EnsureDefault: created user %s", u.ID)
	return u, nil
}
