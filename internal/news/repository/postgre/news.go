package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/news/repository"
	postgresPkg "cryptobuzz-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func toNullScore(s *float64) decimal.NullDecimal {
	if s == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(*s).Round(2), Valid: true}
}

func (r *implRepository) Upsert(ctx context.Context, opts repository.UpsertOptions) (int, error) {
	if len(opts.Items) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.news.repository.postgres.Upsert.BeginTx: %v", err)
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := r.clock()
	stored := 0
	for _, n := range opts.Items {
		if n.URL == "" {
			continue
		}
		currencies := n.Currencies
		if currencies == nil {
			currencies = []string{}
		}
		res, err := queries.Raw(upsertNewsQuery,
			postgresPkg.NewUUID(), n.Title, n.URL, n.Source, string(n.Sentiment),
			pq.Array(currencies), n.PublishedAt, toNullScore(n.Score), now,
		).ExecContext(ctx, tx)
		if err != nil {
			r.l.Errorf(ctx, "internal.news.repository.postgres.Upsert.ExecContext: %v", err)
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			r.l.Errorf(ctx, "internal.news.repository.postgres.Upsert.RowsAffected: %v", err)
			return 0, err
		}
		stored += int(affected)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.news.repository.postgres.Upsert.Commit: %v", err)
		return 0, err
	}
	return stored, nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.NewsItem, error) {
	var rows []newsRow
	if err := postgresPkg.NewQuery(r.buildListQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.news.repository.postgres.List.Bind: %v", err)
		return nil, err
	}

	items := make([]model.NewsItem, len(rows))
	for i, row := range rows {
		items[i] = row.toModel()
	}
	return items, nil
}

func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.NewsItem, error) {
	var row newsRow
	if err := postgresPkg.NewQuery(r.buildGetOneQuery(opts)...).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NewsItem{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.news.repository.postgres.GetOne.Bind: %v", err)
		return model.NewsItem{}, err
	}
	return row.toModel(), nil
}
