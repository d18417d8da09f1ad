package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestBindListDividendsParams(t *testing.T) {
	t.Run("all parameters", func(t *testing.T) {
		c := newTestContext(t, "/dividends?start=2024-01-01&end=2024-12-31&limit=10&currency=USD")

		params, err := BindListDividendsParams(c)

		require.NoError(t, err)
		require.NotNil(t, params.Start)
		require.NotNil(t, params.End)
		require.NotNil(t, params.Limit)
		require.NotNil(t, params.Currency)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), params.Start.Time)
		assert.Equal(t, 2024, params.End.Year())
		assert.Equal(t, 10, *params.Limit)
		assert.Equal(t, "USD", *params.Currency)
	})

	t.Run("no parameters", func(t *testing.T) {
		c := newTestContext(t, "/dividends")

		params, err := BindListDividendsParams(c)

		require.NoError(t, err)
		assert.Nil(t, params.Start)
		assert.Nil(t, params.End)
		assert.Nil(t, params.Limit)
		assert.Nil(t, params.Currency)
	})

	t.Run("malformed date", func(t *testing.T) {
		c := newTestContext(t, "/dividends?start=yesterday")

		_, err := BindListDividendsParams(c)

		assert.Error(t, err)
	})
}

func TestBindChartParams(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantErr   bool
		wantYears *int
	}{
		{name: "defaults left nil", target: "/charts/monthly"},
		{name: "for_n_years set", target: "/charts/monthly?for_n_years=5", wantYears: intPtr(5)},
		{name: "for_n_years zero", target: "/charts/monthly?for_n_years=0", wantYears: intPtr(0)},
		{name: "for_n_years not a number", target: "/charts/monthly?for_n_years=abc", wantErr: true},
		{name: "date range", target: "/charts/by-ticker?start=2024-01-01&end=2024-06-30"},
		{name: "malformed end", target: "/charts/by-ticker?end=June", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.target)

			params, err := BindChartParams(c)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYears, params.ForNYears)
		})
	}
}

func TestBindDividendHistoryParams(t *testing.T) {
	c := newTestContext(t, "/companies/AAPL/dividend-history?limit=3")

	params, err := BindDividendHistoryParams(c)

	require.NoError(t, err)
	require.NotNil(t, params.Limit)
	assert.Equal(t, 3, *params.Limit)
}

func intPtr(v int) *int { return &v }
