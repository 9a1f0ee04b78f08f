package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/user/repository"
	postgresPkg "cryptobuzz-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.User, error) {
	var row userRow
	if err := postgresPkg.NewQuery(r.buildGetOneQuery(opts.Email)...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.Bind: %v", err)
		return model.User{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.User, error) {
	var row userRow
	if err := queries.Raw(createQuery,
		postgresPkg.NewUUID(), strings.ToLower(opts.Email), r.clock().UTC(),
	).Bind(ctx, r.db, &row); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.Bind: %v", err)
		return model.User{}, err
	}
	return row.toModel(), nil
}
