package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cryptobuzz-srv/internal/middleware"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	gotSymbols []string
	gotLimit   int
	prices     map[string]model.PriceSnapshot
}

func (f *fakeUseCase) GetPrices(_ context.Context, ip price.GetPricesInput) (price.GetPricesOutput, error) {
	f.gotSymbols = ip.Symbols
	out := price.GetPricesOutput{Prices: map[string]model.PriceSnapshot{}}
	for _, s := range price.NormalizeSymbols(ip.Symbols) {
		if p, ok := f.prices[s]; ok {
			out.Prices[s] = p
		}
	}
	return out, nil
}

func (f *fakeUseCase) GetPrice(_ context.Context, symbol string) (model.PriceSnapshot, error) {
	p, ok := f.prices[symbol]
	if !ok {
		return model.PriceSnapshot{}, price.ErrCoinNotFound
	}
	return p, nil
}

func (f *fakeUseCase) GetTopCoins(_ context.Context, ip price.GetTopCoinsInput) ([]model.PriceSnapshot, error) {
	f.gotLimit = ip.Limit
	return []model.PriceSnapshot{f.prices["BTC"]}, nil
}

func setupRouter(uc price.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc, nil)
	h.RegisterRoutes(r.Group("/api/v1"), middleware.Middleware{})
	return r
}

func doRequest(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func newFake() *fakeUseCase {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &fakeUseCase{prices: map[string]model.PriceSnapshot{
		"BTC": {Symbol: "BTC", Name: "Bitcoin", Price: 50001, UpdatedAt: ts},
		"ETH": {Symbol: "ETH", Name: "Ethereum", Price: 3000, UpdatedAt: ts},
	}}
}

func TestGetPrices(t *testing.T) {
	uc := newFake()
	r := setupRouter(uc)

	w := doRequest(r, "/api/v1/prices?symbols=btc,eth,NOPE")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"btc", "eth", "NOPE"}, uc.gotSymbols)

	var body struct {
		Data map[string]coinResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 50001.0, body.Data["BTC"].Price)
	assert.NotContains(t, body.Data, "NOPE")
	assert.Equal(t, []float64{}, body.Data["ETH"].Sparkline)
}

func TestGetPricesEmptyUsesDefaults(t *testing.T) {
	uc := newFake()
	r := setupRouter(uc)

	w := doRequest(r, "/api/v1/prices")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, uc.gotSymbols)
}

func TestGetCoin(t *testing.T) {
	tcs := map[string]struct {
		path   string
		status int
	}{
		"found":          {path: "/api/v1/coins/btc", status: http.StatusOK},
		"not found":      {path: "/api/v1/coins/DOGE", status: http.StatusNotFound},
		"invalid symbol": {path: "/api/v1/coins/b$c", status: http.StatusBadRequest},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := setupRouter(newFake())
			w := doRequest(r, tc.path)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestGetTopCoins(t *testing.T) {
	tcs := map[string]struct {
		query  string
		status int
		limit  int
	}{
		"default":      {query: "", status: http.StatusOK, limit: 0},
		"explicit":     {query: "?limit=10", status: http.StatusOK, limit: 10},
		"over maximum": {query: "?limit=500", status: http.StatusBadRequest},
		"not a number": {query: "?limit=abc", status: http.StatusBadRequest},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := newFake()
			r := setupRouter(uc)
			w := doRequest(r, "/api/v1/top-coins"+tc.query)
			require.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, tc.limit, uc.gotLimit)
			}
		})
	}
}
