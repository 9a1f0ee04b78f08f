package postgres

import (
	"strings"
	"time"

	"cryptobuzz-srv/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const watchlistTable = "watchlist"

var watchColumns = []string{"id", "user_id", "symbol", "cmc_id", "name", "created_at"}

var (
	insertQuery = `INSERT INTO watchlist (` + strings.Join(watchColumns, ", ") + `) VALUES ($1, $2, $3, $4, $5, $6)`
	deleteQuery = `DELETE FROM watchlist WHERE id = $1 AND user_id = $2`
)

type watchRow struct {
	ID        string    `boil:"id"`
	UserID    string    `boil:"user_id"`
	Symbol    string    `boil:"symbol"`
	CmcID     null.Int  `boil:"cmc_id"`
	Name      string    `boil:"name"`
	CreatedAt time.Time `boil:"created_at"`
}

func (w watchRow) toModel() model.Watch {
	return model.Watch{
		ID:        w.ID,
		UserID:    w.UserID,
		Symbol:    w.Symbol,
		CmcID:     w.CmcID.Ptr(),
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
	}
}

type symbolRow struct {
	Symbol string `boil:"symbol"`
}

func (r *implRepository) buildListQuery(sc model.Scope) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(watchColumns...),
		qm.From(watchlistTable),
		qm.Where("user_id = ?", sc.UserID),
		qm.OrderBy("created_at"),
	}
}

func (r *implRepository) buildSymbolsQuery() []qm.QueryMod {
	return []qm.QueryMod{
		qm.Distinct("symbol"),
		qm.From(watchlistTable),
		qm.OrderBy("symbol"),
	}
}
