package alert

import (
	"encoding/json"
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/paginator"
)

const (
	MinSnoozeMinutes = 1
	MaxSnoozeMinutes = 1440
)

type CreateInput struct {
	Symbol string
	Type   model.AlertType
	Params json.RawMessage
	// Active defaults to true.
	Active *bool
}

type Filter struct {
	Active *bool
	Types  []model.AlertType
	Symbol string
}

type ListInput struct {
	Filter Filter
}

// UpdateInput changes only the fields that are set. ClearSnooze wins over SnoozeUntil.
type UpdateInput struct {
	ID          string
	Active      *bool
	SnoozeUntil *time.Time
	ClearSnooze bool
}

type SnoozeInput struct {
	ID      string
	Minutes int
}

type ListFiresInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListFiresOutput struct {
	Fires     []model.AlertFire
	Paginator paginator.Paginator
}

// ToggleRecommendedInput enables or disables a one-click alert. The first enable creates it.
type ToggleRecommendedInput struct {
	Type    model.AlertType
	Symbol  string
	Enabled bool
	Params  json.RawMessage
}

type CheckOutput struct {
	Evaluated int
	Fired     int
	Skipped   int
}
