package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"cryptobuzz-srv/internal/alert/repository"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/log"
	"cryptobuzz-srv/pkg/paginator"
	postgresPkg "cryptobuzz-srv/pkg/postgre"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "7b3f1d2e-8a41-4c52-9d3e-2f6a1b0c9e11"
	testAlertID = "0e1c2d3b-4a59-4687-b2c1-d0e9f8a7b6c5"
)

var (
	alertRowColumns = []string{"id", "user_id", "symbol", "type", "params", "active", "snooze_until", "created_at"}
	fireRowColumns  = []string{"id", "alert_id", "user_id", "symbol", "alert_type", "price", "fired_at"}
	testNow         = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testScope       = model.Scope{UserID: testUserID}
)

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &implRepository{l: log.NewNop(), db: db, clock: func() time.Time { return testNow }}, mock
}

// selectFrom matches a built SELECT on table whose WHERE clause starts with where.
func selectFrom(table, where string) string {
	return `^SELECT .+ FROM "` + table + `" WHERE ` + regexp.QuoteMeta(where)
}

var detailPattern = selectFrom(alertsTable, "(id = $1) AND (user_id = $2)")

func priceAlertRow(active bool, snooze any) *sqlmock.Rows {
	return sqlmock.NewRows(alertRowColumns).AddRow(
		testAlertID, testUserID, "BTC", "price", []byte(`{"level":50000,"direction":"above"}`), active, snooze, testNow,
	)
}

func TestCreate(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO alerts")).
		WithArgs(sqlmock.AnyArg(), testUserID, "BTC", "price", []byte(`{"level":50000,"direction":"above"}`), true, nil, testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a, err := repo.Create(context.Background(), testScope, repository.CreateOptions{
		Symbol: "BTC",
		Type:   model.AlertTypePrice,
		Params: model.PriceParams{Level: 50000, Direction: model.DirectionAbove},
		Active: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, testUserID, a.UserID)
	assert.Equal(t, testNow, a.CreatedAt)
	assert.Nil(t, a.SnoozeUntil)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetail(t *testing.T) {
	snooze := testNow.Add(time.Hour)

	tcs := map[string]struct {
		id      string
		mock    func(m sqlmock.Sqlmock)
		wantErr error
		check   func(t *testing.T, a model.Alert)
	}{
		"found": {
			id: testAlertID,
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(detailPattern).WithArgs(testAlertID, testUserID).
					WillReturnRows(priceAlertRow(true, snooze))
			},
			check: func(t *testing.T, a model.Alert) {
				assert.Equal(t, model.AlertTypePrice, a.Type)
				assert.Equal(t, model.PriceParams{Level: 50000, Direction: model.DirectionAbove}, a.Params)
				require.NotNil(t, a.SnoozeUntil)
				assert.True(t, a.SnoozeUntil.Equal(snooze))
			},
		},
		"not found": {
			id: testAlertID,
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(detailPattern).WithArgs(testAlertID, testUserID).
					WillReturnRows(sqlmock.NewRows(alertRowColumns))
			},
			wantErr: repository.ErrNotFound,
		},
		"malformed id": {
			id:      "nope",
			mock:    func(m sqlmock.Sqlmock) {},
			wantErr: repository.ErrNotFound,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo, mock := newTestRepo(t)
			tc.mock(mock)

			a, err := repo.Detail(context.Background(), testScope, tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				tc.check(t, a)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDetailKeepsRowWithCorruptParams(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(detailPattern).WithArgs(testAlertID, testUserID).
		WillReturnRows(sqlmock.NewRows(alertRowColumns).AddRow(
			testAlertID, testUserID, "BTC", "price", []byte(`{"pct":3}`), true, nil, testNow,
		))

	a, err := repo.Detail(context.Background(), testScope, testAlertID)
	require.NoError(t, err)
	assert.Nil(t, a.Params)
}

func TestBuildListQuery(t *testing.T) {
	active := true

	tcs := map[string]struct {
		opts     repository.ListOptions
		want     []string
		wantArgs []any
	}{
		"no filter": {
			want:     []string{"(user_id = $1)", "ORDER BY created_at DESC"},
			wantArgs: []any{testUserID},
		},
		"all filters": {
			opts: repository.ListOptions{Filter: repository.Filter{
				Active: &active,
				Types:  []model.AlertType{model.AlertTypePrice, model.AlertTypePctMove},
				Symbol: "ETH",
			}},
			want:     []string{"(user_id = $1) AND (active = $2) AND (type IN (", "(symbol = $5)", "ORDER BY created_at DESC"},
			wantArgs: []any{testUserID, true, "price", "pct_move", "ETH"},
		},
		"symbol only": {
			opts:     repository.ListOptions{Filter: repository.Filter{Symbol: "BTC"}},
			want:     []string{"(user_id = $1) AND (symbol = $2)"},
			wantArgs: []any{testUserID, "BTC"},
		},
	}

	repo, _ := newTestRepo(t)
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			q, args := queries.BuildQuery(postgresPkg.NewQuery(repo.buildListQuery(testScope, tc.opts)...))
			assert.True(t, strings.HasPrefix(q, "SELECT "))
			assert.Contains(t, q, `FROM "alerts"`)
			for _, w := range tc.want {
				assert.Contains(t, q, w)
			}
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestList(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(selectFrom(alertsTable, "(user_id = $1) AND (symbol = $2) ORDER BY created_at DESC")).
		WithArgs(testUserID, "BTC").
		WillReturnRows(priceAlertRow(true, nil))

	alerts, err := repo.List(context.Background(), testScope, repository.ListOptions{Filter: repository.Filter{Symbol: "BTC"}})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "BTC", alerts[0].Symbol)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOne(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(selectFrom(alertsTable, "(user_id = $1) AND (type = $2) AND (symbol = $3) ORDER BY created_at DESC LIMIT 1")).
		WithArgs(testUserID, "price", "BTC").
		WillReturnRows(sqlmock.NewRows(alertRowColumns))

	_, err := repo.GetOne(context.Background(), testScope, repository.GetOneOptions{Type: model.AlertTypePrice, Symbol: "BTC"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	returning := strings.Join(alertColumns, ", ")
	inactive := false
	until := testNow.Add(30 * time.Minute)

	tcs := map[string]struct {
		opts  repository.UpdateOptions
		query string
		args  []driver.Value
	}{
		"deactivate": {
			opts:  repository.UpdateOptions{ID: testAlertID, Active: &inactive},
			query: "UPDATE alerts SET active = $1 WHERE id = $2 AND user_id = $3 RETURNING " + returning,
			args:  []driver.Value{false, testAlertID, testUserID},
		},
		"snooze": {
			opts:  repository.UpdateOptions{ID: testAlertID, SnoozeUntil: &until},
			query: "UPDATE alerts SET snooze_until = $1 WHERE id = $2 AND user_id = $3 RETURNING " + returning,
			args:  []driver.Value{until, testAlertID, testUserID},
		},
		"clear snooze wins over snooze": {
			opts:  repository.UpdateOptions{ID: testAlertID, Active: &inactive, SnoozeUntil: &until, ClearSnooze: true},
			query: "UPDATE alerts SET active = $1, snooze_until = NULL WHERE id = $2 AND user_id = $3 RETURNING " + returning,
			args:  []driver.Value{false, testAlertID, testUserID},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo, mock := newTestRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(tc.query)).WithArgs(tc.args...).
				WillReturnRows(priceAlertRow(false, nil))

			_, err := repo.Update(context.Background(), testScope, tc.opts)
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateWithoutChangesReadsDetail(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(detailPattern).WithArgs(testAlertID, testUserID).
		WillReturnRows(priceAlertRow(true, nil))

	a, err := repo.Update(context.Background(), testScope, repository.UpdateOptions{ID: testAlertID})
	require.NoError(t, err)
	assert.True(t, a.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	tcs := map[string]struct {
		affected int64
		wantErr  error
	}{
		"deleted":   {affected: 1},
		"not found": {affected: 0, wantErr: repository.ErrNotFound},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo, mock := newTestRepo(t)
			mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).WithArgs(testAlertID, testUserID).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			err := repo.Delete(context.Background(), testScope, testAlertID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListActive(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(selectFrom(alertsTable, "(active = $1) ORDER BY created_at")).
		WithArgs(true).
		WillReturnRows(priceAlertRow(true, nil).AddRow(
			"c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f", testUserID, "ETH", "pct_move",
			[]byte(`{"pct":5,"direction":"below"}`), true, nil, testNow,
		))

	alerts, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, model.PctMoveParams{Pct: 5, Direction: model.DirectionBelow}, alerts[1].Params)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFire(t *testing.T) {
	alert := model.Alert{ID: testAlertID, UserID: testUserID, Symbol: "BTC", Type: model.AlertTypePrice}

	tcs := map[string]struct {
		deactivate      bool
		affected        int64
		wantDeactivated bool
	}{
		"fire and deactivate":  {deactivate: true, affected: 1, wantDeactivated: true},
		"lost race to toggle":  {deactivate: true, affected: 0, wantDeactivated: false},
		"fire without disable": {deactivate: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo, mock := newTestRepo(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(insertFireQuery)).
				WithArgs(sqlmock.AnyArg(), testAlertID, testUserID, "BTC", "price", sqlmock.AnyArg(), testNow).
				WillReturnResult(sqlmock.NewResult(0, 1))
			if tc.deactivate {
				mock.ExpectExec(regexp.QuoteMeta(deactivateQuery)).WithArgs(testAlertID).
					WillReturnResult(sqlmock.NewResult(0, tc.affected))
			}
			mock.ExpectCommit()

			fire, deactivated, err := repo.RecordFire(context.Background(), repository.RecordFireOptions{
				Alert:      alert,
				Price:      50001,
				FiredAt:    testNow,
				Deactivate: tc.deactivate,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantDeactivated, deactivated)
			assert.Equal(t, testAlertID, fire.AlertID)
			assert.Equal(t, 50001.0, fire.Price)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecordFireRollsBack(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertFireQuery)).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, _, err := repo.RecordFire(context.Background(), repository.RecordFireOptions{
		Alert:   model.Alert{ID: testAlertID, UserID: testUserID, Symbol: "BTC", Type: model.AlertTypePrice},
		FiredAt: testNow,
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFires(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM "alert_fires" WHERE \(user_id = \$1\)`).WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(selectFrom(firesTable, "(user_id = $1) ORDER BY fired_at DESC LIMIT 2 OFFSET 2")).WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(fireRowColumns).
			AddRow("f1", testAlertID, testUserID, "BTC", "price", "50001.50000000", testNow))

	fires, pag, err := repo.ListFires(context.Background(), testScope, repository.ListFiresOptions{
		PaginateQuery: paginator.PaginateQuery{Page: 2, Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, fires, 1)
	assert.Equal(t, 50001.5, fires[0].Price)
	assert.Equal(t, model.AlertTypePrice, fires[0].AlertType)
	assert.Equal(t, int64(3), pag.Total)
	assert.Equal(t, int64(1), pag.Count)
	assert.Equal(t, 2, pag.CurrentPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
