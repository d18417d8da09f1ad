package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dividend_backend/internal/api"
	"dividend_backend/internal/feature/report/domain/entity"
	"dividend_backend/internal/feature/report/usecase"
	jwtmw "dividend_backend/internal/platform/jwt"
)

// stubReports answers every report with the same result and remembers the last call.
type stubReports struct {
	report *entity.Report
	err    error
	called string
	userID uint
	params usecase.Params
}

func (s *stubReports) answer(name string, userID uint, p usecase.Params) (*entity.Report, error) {
	s.called, s.userID, s.params = name, userID, p
	return s.report, s.err
}

func (s *stubReports) LastYear(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error) {
	return s.answer("last-year", userID, p)
}

func (s *stubReports) Monthly(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error) {
	return s.answer("monthly", userID, p)
}

func (s *stubReports) Yearly(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error) {
	return s.answer("yearly", userID, p)
}

func (s *stubReports) ByTicker(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error) {
	return s.answer("by-ticker", userID, p)
}

func (s *stubReports) ByAccount(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error) {
	return s.answer("by-account", userID, p)
}

func (s *stubReports) ByCurrency(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error) {
	return s.answer("by-currency", userID, p)
}

func newRouter(uc ReportUsecase, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReportHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set(jwtmw.ContextUserID, userID)
		}
	})
	charts := r.Group("/charts")
	charts.GET("/last-year", h.LastYear)
	charts.GET("/monthly", h.Monthly)
	charts.GET("/yearly", h.Yearly)
	charts.GET("/by-ticker", h.ByTicker)
	charts.GET("/by-account", h.ByAccount)
	charts.GET("/by-currency", h.ByCurrency)
	return r
}

func TestReportHandler_Routes(t *testing.T) {
	report := &entity.Report{
		Kind:   entity.Bar,
		Labels: []string{"Jan"},
		Series: []entity.Series{{Label: "Dividends for 2024 in USD", Values: []decimal.Decimal{decimal.NewFromInt(100)}}},
	}

	for _, name := range []string{"last-year", "monthly", "yearly", "by-ticker", "by-account", "by-currency"} {
		t.Run(name, func(t *testing.T) {
			stub := &stubReports{report: report}
			w := httptest.NewRecorder()
			newRouter(stub, 5).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/charts/"+name, nil))

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, name, stub.called)
			assert.Equal(t, uint(5), stub.userID)

			var got api.ChartResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, "bar", got.ChartType)
			assert.Equal(t, []float64{100}, got.Datasets[0].Data)
			assert.Equal(t, 18, got.Options.Plugins.Legend.Labels.Font.Size)
		})
	}
}

func TestReportHandler_PassesParameters(t *testing.T) {
	stub := &stubReports{report: &entity.Report{Kind: entity.Doughnut}}

	w := httptest.NewRecorder()
	target := "/charts/by-ticker?currency=rub&for_n_years=0&limit=5&start=2024-01-01&end=2024-03-31"
	newRouter(stub, 1).ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rub", stub.params.Currency)
	require.NotNil(t, stub.params.ForNYears)
	assert.Equal(t, 0, *stub.params.ForNYears)
	assert.Equal(t, 5, stub.params.Limit)
	require.NotNil(t, stub.params.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *stub.params.Start)
	require.NotNil(t, stub.params.End)
}

func TestReportHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		userID     uint
		err        error
		wantStatus int
	}{
		{name: "unauthenticated", target: "/charts/monthly", wantStatus: http.StatusUnauthorized},
		{name: "bad query", target: "/charts/monthly?for_n_years=many", userID: 1, wantStatus: http.StatusBadRequest},
		{name: "invalid window", target: "/charts/monthly?for_n_years=99", userID: 1, err: usecase.ErrInvalidWindow, wantStatus: http.StatusBadRequest},
		{name: "invalid currency", target: "/charts/monthly?currency=ABC", userID: 1, err: usecase.ErrInvalidCurrency, wantStatus: http.StatusBadRequest},
		{name: "store failure", target: "/charts/monthly", userID: 1, err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubReports{report: &entity.Report{}, err: tt.err}
			w := httptest.NewRecorder()
			newRouter(stub, tt.userID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
