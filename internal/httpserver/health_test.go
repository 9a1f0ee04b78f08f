package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cryptobuzz-srv/config"
	"cryptobuzz-srv/pkg/coinmarketcap"
	"cryptobuzz-srv/pkg/cryptopanic"
	"cryptobuzz-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*HTTPServer, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv := &HTTPServer{
		gin:      gin.New(),
		logger:   log.NewNop(),
		postgres: db,
	}
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	return srv, mock
}

func get(srv *HTTPServer, path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy without redis", func(t *testing.T) {
		srv, mock := newTestServer(t)
		mock.ExpectPing()

		w, body := get(srv, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "healthy", data["status"])
		assert.Equal(t, "disabled", data["redis"])
		assert.EqualValues(t, 0, data["active_connections"])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("postgres down", func(t *testing.T) {
		srv, mock := newTestServer(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w, body := get(srv, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.EqualValues(t, errCodeUnavailable, body["error_code"])
	})
}

func TestReadyCheck(t *testing.T) {
	srv, mock := newTestServer(t)
	mock.ExpectPing()

	w, body := get(srv, "/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", body["data"].(map[string]any)["status"])
}

func TestLiveCheck(t *testing.T) {
	srv, _ := newTestServer(t)

	w, body := get(srv, "/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, serviceName, body["data"].(map[string]any)["service"])
}

func TestNewValidate(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	valid := Config{
		Port:          5000,
		Postgres:      db,
		CoinMarketCap: fakeCMC{},
		CryptoPanic:   fakeCryptoPanic{},
		DemoUserEmail: "demo@cryptobuzz.app",
		Engine: config.EngineConfig{
			AlertInterval:  15 * time.Second,
			StreamInterval: 10 * time.Second,
			NewsInterval:   2 * time.Minute,
		},
	}

	tcs := map[string]struct {
		mutate  func(c *Config)
		wantErr bool
	}{
		"valid":            {mutate: func(*Config) {}},
		"missing port":     {mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		"missing postgres": {mutate: func(c *Config) { c.Postgres = nil }, wantErr: true},
		"missing cmc":      {mutate: func(c *Config) { c.CoinMarketCap = nil }, wantErr: true},
		"missing email":    {mutate: func(c *Config) { c.DemoUserEmail = "" }, wantErr: true},
		"zero interval":    {mutate: func(c *Config) { c.Engine.NewsInterval = 0 }, wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			srv, err := New(log.NewNop(), cfg)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

type fakeCMC struct{}

func (fakeCMC) QuotesLatest(context.Context, []string) (map[string]coinmarketcap.Quote, error) {
	return nil, nil
}

func (fakeCMC) ListingsLatest(context.Context, int) ([]coinmarketcap.Quote, error) {
	return nil, nil
}

type fakeCryptoPanic struct{}

func (fakeCryptoPanic) Posts(context.Context, []string) ([]cryptopanic.Post, error) {
	return nil, nil
}
