// Package handler serves the dividend charts.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dividend_backend/internal/api"
	"dividend_backend/internal/feature/report/chart"
	"dividend_backend/internal/feature/report/domain/entity"
	"dividend_backend/internal/feature/report/usecase"
	jwtmw "dividend_backend/internal/platform/jwt"
	"dividend_backend/internal/platform/logger"
)

// ReportUsecase is the report behaviour the handler needs.
type ReportUsecase interface {
	LastYear(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error)
	Monthly(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error)
	Yearly(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error)
	ByTicker(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error)
	ByAccount(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error)
	ByCurrency(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error)
}

type reportFunc func(ctx context.Context, userID uint, p usecase.Params) (*entity.Report, error)

// ReportHandler serves /charts.
type ReportHandler struct {
	uc ReportUsecase
}

// NewReportHandler returns a ReportHandler.
func NewReportHandler(uc ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LastYear handles GET /charts/last-year.
func (h *ReportHandler) LastYear(c *gin.Context) { h.render(c, "last-year", h.uc.LastYear) }

// Monthly handles GET /charts/monthly.
func (h *ReportHandler) Monthly(c *gin.Context) { h.render(c, "monthly", h.uc.Monthly) }

// Yearly handles GET /charts/yearly.
func (h *ReportHandler) Yearly(c *gin.Context) { h.render(c, "yearly", h.uc.Yearly) }

// ByTicker handles GET /charts/by-ticker.
func (h *ReportHandler) ByTicker(c *gin.Context) { h.render(c, "by-ticker", h.uc.ByTicker) }

// ByAccount handles GET /charts/by-account.
func (h *ReportHandler) ByAccount(c *gin.Context) { h.render(c, "by-account", h.uc.ByAccount) }

// ByCurrency handles GET /charts/by-currency.
func (h *ReportHandler) ByCurrency(c *gin.Context) { h.render(c, "by-currency", h.uc.ByCurrency) }

func (h *ReportHandler) render(c *gin.Context, name string, fn reportFunc) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	qp, err := api.BindChartParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p := usecase.Params{ForNYears: qp.ForNYears}
	if qp.Currency != nil {
		p.Currency = *qp.Currency
	}
	if qp.Limit != nil {
		p.Limit = *qp.Limit
	}
	if qp.Start != nil {
		t := qp.Start.Time
		p.Start = &t
	}
	if qp.End != nil {
		t := qp.End.Time
		p.End = &t
	}

	report, err := fn(c.Request.Context(), userID, p)
	if err != nil {
		log := logger.FromContext(c.Request.Context())
		switch {
		case errors.Is(err, usecase.ErrInvalidCurrency),
			errors.Is(err, usecase.ErrInvalidWindow),
			errors.Is(err, usecase.ErrInvalidLimit),
			errors.Is(err, usecase.ErrInvalidDateRange):
			log.Warn("invalid report parameters", "report", name, "error", err)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			log.Error("report failed", "report", name, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, chart.Build(report))
}
