package repository

import (
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/paginator"
)

// Filter contains filtering options for alert queries.
type Filter struct {
	Active *bool
	Types  []model.AlertType
	Symbol string
}

type CreateOptions struct {
	Symbol string
	Type   model.AlertType
	Params model.AlertParams
	Active bool
}

type ListOptions struct {
	Filter Filter
}

// GetOneOptions selects the caller's newest alert of a type on a symbol.
type GetOneOptions struct {
	Type   model.AlertType
	Symbol string
}

// UpdateOptions contains options for updating an alert.
// Only non-nil fields are updated; ClearSnooze sets snooze_until to NULL.
type UpdateOptions struct {
	ID          string
	Active      *bool
	SnoozeUntil *time.Time
	ClearSnooze bool
}

type RecordFireOptions struct {
	Alert      model.Alert
	Price      float64
	FiredAt    time.Time
	Deactivate bool
}

type ListFiresOptions struct {
	PaginateQuery paginator.PaginateQuery
}
