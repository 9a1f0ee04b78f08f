package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/news/repository"
	"cryptobuzz-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newsRowColumns = []string{"id", "title", "url", "source", "sentiment", "currencies", "published_at", "score", "created_at"}

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &implRepository{l: log.NewNop(), db: db, clock: func() time.Time { return now }}, mock
}

func TestUpsert(t *testing.T) {
	repo, mock := newTestRepo(t)
	score := 62.0
	published := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO news_items")).
		WithArgs(sqlmock.AnyArg(), "BTC breaks out", "https://x/1", "CoinDesk", "positive",
			sqlmock.AnyArg(), published, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO news_items")).
		WithArgs(sqlmock.AnyArg(), "ETH flat", "https://x/2", "", "neutral",
			sqlmock.AnyArg(), published, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := repo.Upsert(context.Background(), repository.UpsertOptions{Items: []model.NewsItem{
		{Title: "BTC breaks out", URL: "https://x/1", Source: "CoinDesk", Sentiment: model.SentimentPositive, Currencies: []string{"BTC"}, PublishedAt: published, Score: &score},
		{Title: "no url is skipped"},
		{Title: "ETH flat", URL: "https://x/2", Sentiment: model.SentimentNeutral, PublishedAt: published},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRollsBackOnError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO news_items")).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.Upsert(context.Background(), repository.UpsertOptions{Items: []model.NewsItem{{Title: "t", URL: "u"}}})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	tcs := map[string]struct {
		opts  repository.ListOptions
		query string
		args  []driver.Value
	}{
		"all": {
			opts:  repository.ListOptions{Limit: 50},
			query: `^SELECT .+ FROM "news_items" ORDER BY published_at DESC LIMIT 50`,
		},
		"by currency": {
			opts:  repository.ListOptions{Filter: repository.Filter{Currency: "BTC"}, Limit: 10},
			query: `^SELECT .+ FROM "news_items" WHERE \(\$1 = ANY\(currencies\)\) ORDER BY published_at DESC LIMIT 10`,
			args:  []driver.Value{"BTC"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo, mock := newTestRepo(t)
			ts := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

			mock.ExpectQuery(tc.query).WithArgs(tc.args...).
				WillReturnRows(sqlmock.NewRows(newsRowColumns).
					AddRow("id-1", "BTC up", "https://x/1", "CoinDesk", "positive", "{BTC,ETH}", ts, "75.00", ts).
					AddRow("id-2", "Quiet day", "https://x/2", "", "neutral", "{BTC}", ts, nil, ts))

			items, err := repo.List(context.Background(), tc.opts)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, []string{"BTC", "ETH"}, items[0].Currencies)
			require.NotNil(t, items[0].Score)
			assert.Equal(t, 75.0, *items[0].Score)
			assert.Nil(t, items[1].Score)
			assert.Equal(t, model.SentimentNeutral, items[1].Sentiment)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetOneNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "news_items" WHERE ($1 = ANY(currencies)) ORDER BY published_at DESC LIMIT 1`)).
		WithArgs("DOGE").
		WillReturnRows(sqlmock.NewRows(newsRowColumns))

	_, err := repo.GetOne(context.Background(), repository.GetOneOptions{Filter: repository.Filter{Currency: "DOGE"}})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
