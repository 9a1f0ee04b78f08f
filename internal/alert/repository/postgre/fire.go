package postgres

import (
	"context"

	"cryptobuzz-srv/internal/alert/repository"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/paginator"
	postgresPkg "cryptobuzz-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/shopspring/decimal"
)

// firePricePlaces matches the numeric(18,8) column.
const firePricePlaces = 8

func (r *implRepository) RecordFire(ctx context.Context, opts repository.RecordFireOptions) (model.AlertFire, bool, error) {
	fire := model.AlertFire{
		ID:        postgresPkg.NewUUID(),
		AlertID:   opts.Alert.ID,
		UserID:    opts.Alert.UserID,
		Symbol:    opts.Alert.Symbol,
		AlertType: opts.Alert.Type,
		Price:     opts.Price,
		FiredAt:   opts.FiredAt.UTC(),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordFire.BeginTx: %v", err)
		return model.AlertFire{}, false, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := queries.Raw(insertFireQuery,
		fire.ID, fire.AlertID, fire.UserID, fire.Symbol, string(fire.AlertType),
		decimal.NewFromFloat(fire.Price).Round(firePricePlaces), fire.FiredAt,
	).ExecContext(ctx, tx); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordFire.insert: %v", err)
		return model.AlertFire{}, false, err
	}

	deactivated := false
	if opts.Deactivate {
		res, err := queries.Raw(deactivateQuery, fire.AlertID).ExecContext(ctx, tx)
		if err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordFire.deactivate: %v", err)
			return model.AlertFire{}, false, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordFire.RowsAffected: %v", err)
			return model.AlertFire{}, false, err
		}
		deactivated = n > 0
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.RecordFire.Commit: %v", err)
		return model.AlertFire{}, false, err
	}
	return fire, deactivated, nil
}

func (r *implRepository) ListFires(ctx context.Context, sc model.Scope, opts repository.ListFiresOptions) ([]model.AlertFire, paginator.Paginator, error) {
	pq := opts.PaginateQuery
	pq.Adjust()

	var total int64
	if err := postgresPkg.NewQuery(r.buildCountFiresQuery(sc)...).QueryRowContext(ctx, r.db).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListFires.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var rows []fireRow
	if err := postgresPkg.NewQuery(r.buildListFiresQuery(sc, pq)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListFires.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	fires := make([]model.AlertFire, len(rows))
	for i, row := range rows {
		fires[i] = row.toModel()
	}
	return fires, paginator.New(pq, total, len(fires)), nil
}
