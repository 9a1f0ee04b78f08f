package postgres

import (
	"fmt"
	"strings"
	"time"

	"cryptobuzz-srv/internal/alert/repository"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/paginator"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/shopspring/decimal"
)

const (
	alertsTable = "alerts"
	firesTable  = "alert_fires"
)

var (
	alertColumns = []string{"id", "user_id", "symbol", "type", "params", "active", "snooze_until", "created_at"}
	fireColumns  = []string{"id", "alert_id", "user_id", "symbol", "alert_type", "price", "fired_at"}
)

var (
	insertAlertQuery = `INSERT INTO alerts (` + strings.Join(alertColumns, ", ") + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	deleteQuery      = `DELETE FROM alerts WHERE id = $1 AND user_id = $2`

	insertFireQuery = `INSERT INTO alert_fires (` + strings.Join(fireColumns, ", ") + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	// The active guard makes a concurrent user toggle visible as zero affected rows.
	deactivateQuery = `UPDATE alerts SET active = FALSE WHERE id = $1 AND active = TRUE`
)

type alertRow struct {
	ID          string    `boil:"id"`
	UserID      string    `boil:"user_id"`
	Symbol      string    `boil:"symbol"`
	Type        string    `boil:"type"`
	Params      []byte    `boil:"params"`
	Active      bool      `boil:"active"`
	SnoozeUntil null.Time `boil:"snooze_until"`
	CreatedAt   time.Time `boil:"created_at"`
}

type fireRow struct {
	ID        string          `boil:"id"`
	AlertID   string          `boil:"alert_id"`
	UserID    string          `boil:"user_id"`
	Symbol    string          `boil:"symbol"`
	AlertType string          `boil:"alert_type"`
	Price     decimal.Decimal `boil:"price"`
	FiredAt   time.Time       `boil:"fired_at"`
}

func (f fireRow) toModel() model.AlertFire {
	price, _ := f.Price.Float64()
	return model.AlertFire{
		ID:        f.ID,
		AlertID:   f.AlertID,
		UserID:    f.UserID,
		Symbol:    f.Symbol,
		AlertType: model.AlertType(f.AlertType),
		Price:     price,
		FiredAt:   f.FiredAt,
	}
}

func (r *implRepository) buildDetailQuery(sc model.Scope, id string) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(alertColumns...),
		qm.From(alertsTable),
		qm.Where("id = ?", id),
		qm.Where("user_id = ?", sc.UserID),
	}
}

func (r *implRepository) buildGetOneQuery(sc model.Scope, opts repository.GetOneOptions) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(alertColumns...),
		qm.From(alertsTable),
		qm.Where("user_id = ?", sc.UserID),
		qm.Where("type = ?", string(opts.Type)),
		qm.Where("symbol = ?", opts.Symbol),
		qm.OrderBy("created_at DESC"),
		qm.Limit(1),
	}
}

func (r *implRepository) buildListQuery(sc model.Scope, opts repository.ListOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(alertColumns...),
		qm.From(alertsTable),
		qm.Where("user_id = ?", sc.UserID),
	}

	if opts.Filter.Active != nil {
		mods = append(mods, qm.Where("active = ?", *opts.Filter.Active))
	}
	if len(opts.Filter.Types) > 0 {
		types := make([]any, len(opts.Filter.Types))
		for i, t := range opts.Filter.Types {
			types[i] = string(t)
		}
		mods = append(mods, qm.WhereIn("type IN ?", types...))
	}
	if opts.Filter.Symbol != "" {
		mods = append(mods, qm.Where("symbol = ?", opts.Filter.Symbol))
	}

	return append(mods, qm.OrderBy("created_at DESC"))
}

func (r *implRepository) buildListActiveQuery() []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(alertColumns...),
		qm.From(alertsTable),
		qm.Where("active = ?", true),
		qm.OrderBy("created_at"),
	}
}

// buildUpdateQuery returns ok=false when opts changes nothing.
func (r *implRepository) buildUpdateQuery(sc model.Scope, opts repository.UpdateOptions) (string, []any, bool) {
	var (
		sets []string
		args []any
	)

	if opts.Active != nil {
		args = append(args, *opts.Active)
		sets = append(sets, fmt.Sprintf("active = $%d", len(args)))
	}
	switch {
	case opts.ClearSnooze:
		sets = append(sets, "snooze_until = NULL")
	case opts.SnoozeUntil != nil:
		args = append(args, opts.SnoozeUntil.UTC())
		sets = append(sets, fmt.Sprintf("snooze_until = $%d", len(args)))
	}
	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, opts.ID, sc.UserID)
	q := fmt.Sprintf("UPDATE alerts SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args)-1, len(args), strings.Join(alertColumns, ", "))
	return q, args, true
}

func (r *implRepository) buildCountFiresQuery(sc model.Scope) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select("COUNT(*)"),
		qm.From(firesTable),
		qm.Where("user_id = ?", sc.UserID),
	}
}

func (r *implRepository) buildListFiresQuery(sc model.Scope, pq paginator.PaginateQuery) []qm.QueryMod {
	pq.Adjust()
	return []qm.QueryMod{
		qm.Select(fireColumns...),
		qm.From(firesTable),
		qm.Where("user_id = ?", sc.UserID),
		qm.OrderBy("fired_at DESC"),
		qm.Limit(int(pq.Limit)),
		qm.Offset(int(pq.Offset())),
	}
}
