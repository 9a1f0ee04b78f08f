package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cryptobuzz-srv/internal/alert/repository"
	"cryptobuzz-srv/internal/model"
	postgresPkg "cryptobuzz-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) toAlert(ctx context.Context, row alertRow) model.Alert {
	a := model.Alert{
		ID:        row.ID,
		UserID:    row.UserID,
		Symbol:    row.Symbol,
		Type:      model.AlertType(row.Type),
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
	}
	if row.SnoozeUntil.Valid {
		t := row.SnoozeUntil.Time
		a.SnoozeUntil = &t
	}

	p, err := model.DecodeAlertParams(a.Type, row.Params)
	if err != nil {
		// Kept with nil params; evaluation reports it as invalid instead of hiding the row.
		r.l.Warnf(ctx, "internal.alert.repository.postgres.toAlert: alert %s: %v", a.ID, err)
	} else {
		a.Params = p
	}
	return a
}

func (r *implRepository) toAlerts(ctx context.Context, rows []alertRow) []model.Alert {
	alerts := make([]model.Alert, len(rows))
	for i, row := range rows {
		alerts[i] = r.toAlert(ctx, row)
	}
	return alerts
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Alert, error) {
	params, err := model.EncodeAlertParams(opts.Params)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.EncodeAlertParams: %v", err)
		return model.Alert{}, err
	}

	a := model.Alert{
		ID:        postgresPkg.NewUUID(),
		UserID:    sc.UserID,
		Symbol:    opts.Symbol,
		Type:      opts.Type,
		Params:    opts.Params,
		Active:    opts.Active,
		CreatedAt: r.clock().UTC(),
	}

	if _, err := queries.Raw(insertAlertQuery,
		a.ID, a.UserID, a.Symbol, string(a.Type), params, a.Active, null.Time{}, a.CreatedAt,
	).ExecContext(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Create.ExecContext: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	if !postgresPkg.IsValidUUID(id) {
		return model.Alert{}, repository.ErrNotFound
	}

	var row alertRow
	if err := postgresPkg.NewQuery(r.buildDetailQuery(sc, id)...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Detail.Bind: %v", err)
		return model.Alert{}, err
	}
	return r.toAlert(ctx, row), nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Alert, error) {
	var rows []alertRow
	if err := postgresPkg.NewQuery(r.buildListQuery(sc, opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.List.Bind: %v", err)
		return nil, err
	}
	return r.toAlerts(ctx, rows), nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.Alert, error) {
	var row alertRow
	if err := postgresPkg.NewQuery(r.buildGetOneQuery(sc, opts)...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.GetOne.Bind: %v", err)
		return model.Alert{}, err
	}
	return r.toAlert(ctx, row), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Alert, error) {
	if !postgresPkg.IsValidUUID(opts.ID) {
		return model.Alert{}, repository.ErrNotFound
	}

	q, args, ok := r.buildUpdateQuery(sc, opts)
	if !ok {
		return r.Detail(ctx, sc, opts.ID)
	}

	var row alertRow
	if err := queries.Raw(q, args...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Update.Bind: %v", err)
		return model.Alert{}, err
	}
	return r.toAlert(ctx, row), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !postgresPkg.IsValidUUID(id) {
		return repository.ErrNotFound
	}

	res, err := queries.Raw(deleteQuery, id, sc.UserID).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Delete.ExecContext: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) ListActive(ctx context.Context) ([]model.Alert, error) {
	var rows []alertRow
	if err := postgresPkg.NewQuery(r.buildListActiveQuery()...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListActive.Bind: %v", err)
		return nil, err
	}
	return r.toAlerts(ctx, rows), nil
}
