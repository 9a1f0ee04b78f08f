package http

import (
	"encoding/json"
	"strings"
	"time"

	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/pkg/paginator"
)

type createReq struct {
	Symbol string          `json:"symbol"`
	Type   string          `json:"type" binding:"required"`
	Params json.RawMessage `json:"params"`
	Active *bool           `json:"active"`
}

func (r createReq) toInput() alert.CreateInput {
	return alert.CreateInput{
		Symbol: r.Symbol,
		Type:   model.AlertType(r.Type),
		Params: r.Params,
		Active: r.Active,
	}
}

type listReq struct {
	Active *bool  `form:"active"`
	Type   string `form:"type"`
	Symbol string `form:"symbol"`
}

func (r listReq) toInput() alert.ListInput {
	ip := alert.ListInput{Filter: alert.Filter{Active: r.Active, Symbol: r.Symbol}}
	for _, t := range strings.Split(r.Type, ",") {
		if t = strings.TrimSpace(t); t != "" {
			ip.Filter.Types = append(ip.Filter.Types, model.AlertType(t))
		}
	}
	return ip
}

type updateReq struct {
	Active      *bool      `json:"active"`
	SnoozeUntil *time.Time `json:"snoozeUntil"`
	ClearSnooze bool       `json:"clearSnooze"`
}

func (r updateReq) toInput(id string) alert.UpdateInput {
	return alert.UpdateInput{
		ID:          id,
		Active:      r.Active,
		SnoozeUntil: r.SnoozeUntil,
		ClearSnooze: r.ClearSnooze,
	}
}

type snoozeReq struct {
	Minutes int `json:"minutes" binding:"required"`
}

type toggleRecommendedReq struct {
	Type    string          `json:"type" binding:"required"`
	Symbol  string          `json:"symbol"`
	Enabled *bool           `json:"enabled" binding:"required"`
	Params  json.RawMessage `json:"params"`
}

func (r toggleRecommendedReq) toInput() alert.ToggleRecommendedInput {
	return alert.ToggleRecommendedInput{
		Type:    model.AlertType(r.Type),
		Symbol:  r.Symbol,
		Enabled: *r.Enabled,
		Params:  r.Params,
	}
}

type alertResp struct {
	ID          string            `json:"id"`
	Symbol      string            `json:"symbol"`
	Type        string            `json:"type"`
	Params      model.AlertParams `json:"params"`
	Active      bool              `json:"active"`
	SnoozeUntil *string           `json:"snoozeUntil"`
	CreatedAt   string            `json:"createdAt"`
}

func newAlertResp(a model.Alert) alertResp {
	resp := alertResp{
		ID:        a.ID,
		Symbol:    a.Symbol,
		Type:      string(a.Type),
		Params:    a.Params,
		Active:    a.Active,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.SnoozeUntil != nil {
		s := a.SnoozeUntil.UTC().Format(time.RFC3339)
		resp.SnoozeUntil = &s
	}
	return resp
}

func newAlertsResp(alerts []model.Alert) []alertResp {
	out := make([]alertResp, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, newAlertResp(a))
	}
	return out
}

type fireResp struct {
	ID      string  `json:"id"`
	AlertID string  `json:"alertId"`
	Symbol  string  `json:"symbol"`
	Type    string  `json:"type"`
	Price   float64 `json:"price"`
	FiredAt string  `json:"firedAt"`
}

type listFiresResp struct {
	Fires     []fireResp                  `json:"fires"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListFiresResp(o alert.ListFiresOutput) listFiresResp {
	fires := make([]fireResp, 0, len(o.Fires))
	for _, f := range o.Fires {
		fires = append(fires, fireResp{
			ID:      f.ID,
			AlertID: f.AlertID,
			Symbol:  f.Symbol,
			Type:    string(f.AlertType),
			Price:   f.Price,
			FiredAt: f.FiredAt.UTC().Format(time.RFC3339),
		})
	}
	return listFiresResp{Fires: fires, Paginator: o.Paginator.ToResponse()}
}
