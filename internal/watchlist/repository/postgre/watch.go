package postgres

import (
	"context"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/watchlist/repository"
	postgresPkg "cryptobuzz-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.Watch, error) {
	var rows []watchRow
	if err := postgresPkg.NewQuery(r.buildListQuery(sc)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.watchlist.repository.postgres.List.Bind: %v", err)
		return nil, err
	}

	watches := make([]model.Watch, len(rows))
	for i, row := range rows {
		watches[i] = row.toModel()
	}
	return watches, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Watch, error) {
	w := model.Watch{
		ID:        postgresPkg.NewUUID(),
		UserID:    sc.UserID,
		Symbol:    opts.Symbol,
		CmcID:     opts.CmcID,
		Name:      opts.Name,
		CreatedAt: r.clock().UTC(),
	}

	if _, err := queries.Raw(insertQuery,
		w.ID, w.UserID, w.Symbol, null.IntFromPtr(w.CmcID), w.Name, w.CreatedAt,
	).ExecContext(ctx, r.db); err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.Watch{}, repository.ErrAlreadyExists
		}
		r.l.Errorf(ctx, "internal.watchlist.repository.postgres.Create.ExecContext: %v", err)
		return model.Watch{}, err
	}
	return w, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !postgresPkg.IsValidUUID(id) {
		return repository.ErrNotFound
	}

	res, err := queries.Raw(deleteQuery, id, sc.UserID).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.watchlist.repository.postgres.Delete.ExecContext: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.watchlist.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) Symbols(ctx context.Context) ([]string, error) {
	var rows []symbolRow
	if err := postgresPkg.NewQuery(r.buildSymbolsQuery()...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.watchlist.repository.postgres.Symbols.Bind: %v", err)
		return nil, err
	}

	symbols := make([]string, len(rows))
	for i, row := range rows {
		symbols[i] = row.Symbol
	}
	return symbols, nil
}
