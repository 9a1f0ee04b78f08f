package postgres

import (
	"strings"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/news/repository"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const newsTable = "news_items"

var newsColumns = []string{"id", "title", "url", "source", "sentiment", "currencies", "published_at", "score", "created_at"}

var upsertNewsQuery = `INSERT INTO news_items (` + strings.Join(newsColumns, ", ") + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (url) DO UPDATE SET sentiment = EXCLUDED.sentiment, score = EXCLUDED.score, currencies = EXCLUDED.currencies`

type newsRow struct {
	ID          string              `boil:"id"`
	Title       string              `boil:"title"`
	URL         string              `boil:"url"`
	Source      string              `boil:"source"`
	Sentiment   string              `boil:"sentiment"`
	Currencies  pq.StringArray      `boil:"currencies"`
	PublishedAt time.Time           `boil:"published_at"`
	Score       decimal.NullDecimal `boil:"score"`
	CreatedAt   time.Time           `boil:"created_at"`
}

func (n newsRow) toModel() model.NewsItem {
	item := model.NewsItem{
		ID:          n.ID,
		Title:       n.Title,
		URL:         n.URL,
		Source:      n.Source,
		Sentiment:   model.Sentiment(n.Sentiment),
		Currencies:  []string(n.Currencies),
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
	}
	if n.Score.Valid {
		f, _ := n.Score.Decimal.Float64()
		item.Score = &f
	}
	return item
}

func (r *implRepository) buildListQuery(opts repository.ListOptions) []qm.QueryMod {
	mods := append(buildWhere(opts.Filter), qm.OrderBy("published_at DESC"))
	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}
	return mods
}

func (r *implRepository) buildGetOneQuery(opts repository.GetOneOptions) []qm.QueryMod {
	return append(buildWhere(opts.Filter),
		qm.OrderBy("published_at DESC"),
		qm.Limit(1),
	)
}

func buildWhere(f repository.Filter) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(newsColumns...),
		qm.From(newsTable),
	}
	if f.Currency != "" {
		mods = append(mods, qm.Where("? = ANY(currencies)", f.Currency))
	}
	return mods
}
