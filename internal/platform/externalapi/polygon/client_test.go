package polygon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dividend_backend/internal/feature/company/usecase"
)

type denyLimiter struct{}

func (denyLimiter) Allow() bool { return false }
func (denyLimiter) WaitIfNeeded(context.Context) error { return nil }

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, srv.Client(), nil)
}

func TestClient_Resolve_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/reference/tickers/AAPL", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": {
				"ticker": "AAPL",
				"name": "Apple Inc.",
				"description": "Apple designs smartphones.",
				"branding": {"icon_url": "https://api.polygon.io/v1/reference/company-branding/x/images/icon.png"}
			}
		}`))
	}))
	defer srv.Close()

	md, err := newTestClient(srv).Resolve(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", md.Name)
	assert.Equal(t, "AAPL", md.Ticker)
	assert.Equal(t, "Apple designs smartphones.", md.Description)
	assert.Equal(t, "https://api.polygon.io/v1/reference/company-branding/x/images/icon.png", md.IconURL)
}

func TestClient_Resolve_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: usecase.ErrLookupNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: usecase.ErrLookupRateLimited},
		{name: "server error", status: http.StatusBadGateway, wantErr: usecase.ErrLookupUnavailable},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: usecase.ErrLookupUnknown},
		{name: "broken json", status: http.StatusOK, body: `{"results":`, wantErr: usecase.ErrLookupUnknown},
		{name: "empty result", status: http.StatusOK, body: `{"status":"OK","results":{}}`, wantErr: usecase.ErrLookupNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).Resolve(context.Background(), "AAPL")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Resolve_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	c := newTestClient(srv)
	srv.Close()

	_, err := c.Resolve(context.Background(), "AAPL")
	require.ErrorIs(t, err, usecase.ErrLookupUnavailable)
	assert.NotContains(t, err.Error(), "test-key")
}

func TestClient_LimiterFailsFast(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, srv.Client(), denyLimiter{})
	_, err := c.Resolve(context.Background(), "AAPL")

	assert.ErrorIs(t, err, usecase.ErrLookupRateLimited)
	assert.False(t, called)
}

func TestClient_FetchIcon(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	data, contentType, err := newTestClient(srv).FetchIcon(context.Background(), srv.URL+"/images/icon.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestClient_DividendHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/reference/dividends", r.URL.Path)
		assert.Equal(t, "KO", r.URL.Query().Get("ticker"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"cash_amount": 0.485, "currency": "USD", "pay_date": "2024-07-01", "ex_dividend_date": "2024-06-14"},
				{"cash_amount": 0.46, "currency": "USD", "ex_dividend_date": "2023-11-30"},
				{"cash_amount": 0.46, "currency": "USD", "pay_date": "soon"}
			]
		}`))
	}))
	defer srv.Close()

	items, err := newTestClient(srv).DividendHistory(context.Background(), "KO", 3)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), items[0].Date)
	assert.Equal(t, "0.485", items[0].Amount.String())
	assert.Equal(t, "USD", items[0].Currency)
	assert.Equal(t, SourceName, items[0].Source)
	assert.Equal(t, time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC), items[1].Date)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("POLYGON_API_KEY", "abc")
	t.Setenv("POLYGON_BASE_URL", "")
	t.Setenv("POLYGON_RATE_LIMIT", "0")

	cfg := LoadConfig()
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}
