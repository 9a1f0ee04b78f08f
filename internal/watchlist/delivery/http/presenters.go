package http

import (
	"time"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/watchlist"
)

type createReq struct {
	Symbol string `json:"symbol" binding:"required"`
	CmcID  *int   `json:"cmcId"`
	Name   string `json:"name"`
}

func (r createReq) toInput() watchlist.CreateInput {
	return watchlist.CreateInput{Symbol: r.Symbol, CmcID: r.CmcID, Name: r.Name}
}

type watchResp struct {
	ID        string `json:"id"`
	Symbol    string `json:"symbol"`
	CmcID     *int   `json:"cmcId"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

func newWatchResp(w model.Watch) watchResp {
	return watchResp{
		ID:        w.ID,
		Symbol:    w.Symbol,
		CmcID:     w.CmcID,
		Name:      w.Name,
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newWatchesResp(watches []model.Watch) []watchResp {
	out := make([]watchResp, 0, len(watches))
	for _, w := range watches {
		out = append(out, newWatchResp(w))
	}
	return out
}

type seedResp struct {
	Watchlist  []watchResp `json:"watchlist"`
	NewsStored int         `json:"newsStored"`
}
