package http

import (
	"strings"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
)

type getPricesReq struct {
	Symbols string `form:"symbols"`
}

func (r getPricesReq) toInput() price.GetPricesInput {
	if strings.TrimSpace(r.Symbols) == "" {
		return price.GetPricesInput{}
	}
	return price.GetPricesInput{Symbols: strings.Split(r.Symbols, ",")}
}

type getTopCoinsReq struct {
	Limit int `form:"limit"`
}

func (r getTopCoinsReq) validate() error {
	if r.Limit < 0 || r.Limit > price.MaxTopLimit {
		return errWrongQuery
	}
	return nil
}

func (r getTopCoinsReq) toInput() price.GetTopCoinsInput {
	return price.GetTopCoinsInput{Limit: r.Limit}
}

type coinResp struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	CmcID     int       `json:"cmcId,omitempty"`
	Rank      int       `json:"rank,omitempty"`
	Price     float64   `json:"price"`
	Change24h float64   `json:"change24h"`
	Volume24h float64   `json:"volume24h"`
	MarketCap float64   `json:"marketCap"`
	High24h   float64   `json:"high24h"`
	Low24h    float64   `json:"low24h"`
	Sparkline []float64 `json:"sparkline"`
	UpdatedAt int64     `json:"updatedAt"`
}

func newCoinResp(s model.PriceSnapshot) coinResp {
	spark := s.Sparkline
	if spark == nil {
		spark = []float64{}
	}
	return coinResp{
		Symbol:    s.Symbol,
		Name:      s.Name,
		CmcID:     s.CmcID,
		Rank:      s.Rank,
		Price:     s.Price,
		Change24h: s.Change24h,
		Volume24h: s.Volume24h,
		MarketCap: s.MarketCap,
		High24h:   s.High24h,
		Low24h:    s.Low24h,
		Sparkline: spark,
		UpdatedAt: s.UpdatedAt.UnixMilli(),
	}
}

// newPricesResp keys the response by symbol. Symbols the upstream could not resolve are simply absent.
func (h *Handler) newPricesResp(o price.GetPricesOutput) map[string]coinResp {
	out := make(map[string]coinResp, len(o.Prices))
	for sym, s := range o.Prices {
		out[sym] = newCoinResp(s)
	}
	return out
}

func (h *Handler) newTopCoinsResp(coins []model.PriceSnapshot) []coinResp {
	out := make([]coinResp, 0, len(coins))
	for _, c := range coins {
		out = append(out, newCoinResp(c))
	}
	return out
}
