// Package handler exposes company registration and lookups over HTTP.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dividend_backend/internal/api"
	"dividend_backend/internal/feature/company/domain/entity"
	"dividend_backend/internal/feature/company/usecase"
	"dividend_backend/internal/platform/logger"
)

// CompanyUsecase is the company behaviour the handler needs.
type CompanyUsecase interface {
	CreateFromTicker(ctx context.Context, ticker string) (*entity.Company, error)
	Get(ctx context.Context, ticker string) (*entity.Company, error)
	List(ctx context.Context) ([]entity.Company, error)
	DividendHistory(ctx context.Context, ticker string, limit int) ([]entity.DividendAnnouncement, error)
}

// CompanyHandler serves /companies.
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler returns a CompanyHandler.
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func toResponse(c *entity.Company) api.CompanyResponse {
	return api.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Ticker:      c.Ticker,
		Description: c.Description,
		IconImage:   c.IconImage,
		IconURL:     c.IconURL,
	}
}

// Create handles POST /companies.
//   - 400 malformed ticker
//   - 409 ticker already registered (informational, nothing changes)
//   - 404/429/503/502 metadata lookup failures, nothing is stored
//   - 201 with the new company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req api.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.FromContext(c.Request.Context()).Warn("company validation failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	company, err := h.uc.CreateFromTicker(c.Request.Context(), req.Ticker)
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyAlreadyExists) {
			c.JSON(http.StatusConflict, api.MessageResponse{
				Message: fmt.Sprintf("company with ticker %s has already been added", req.Ticker),
			})
			return
		}
		h.fail(c, err)
		return
	}
	logger.FromContext(c.Request.Context()).Info("company created", "ticker", company.Ticker)
	c.JSON(http.StatusCreated, toResponse(company))
}

// List handles GET /companies.
func (h *CompanyHandler) List(c *gin.Context) {
	list, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]api.CompanyResponse, 0, len(list))
	for i := range list {
		out = append(out, toResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /companies/:ticker.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.uc.Get(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(company))
}

// DividendHistory handles GET /companies/:ticker/dividend-history.
func (h *CompanyHandler) DividendHistory(c *gin.Context) {
	params, err := api.BindDividendHistoryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	items, err := h.uc.DividendHistory(c.Request.Context(), c.Param("ticker"), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]api.DividendHistoryItem, 0, len(items))
	for _, it := range items {
		out = append(out, api.DividendHistoryItem{
			Date:     it.Date.Format("2006-01-02"),
			Amount:   it.Amount,
			Currency: it.Currency,
			Source:   it.Source,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CompanyHandler) fail(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())
	switch {
	case errors.Is(err, usecase.ErrInvalidTicker):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrLookupNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "ticker not found by market data provider"})
	case errors.Is(err, usecase.ErrLookupRateLimited):
		log.Warn("market data rate limited", "error", err)
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "market data provider rate limit reached, try again later"})
	case errors.Is(err, usecase.ErrLookupUnavailable):
		log.Error("market data unavailable", "error", err)
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "market data provider unavailable"})
	case errors.Is(err, usecase.ErrLookupUnknown):
		log.Error("market data lookup failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "market data lookup failed"})
	default:
		log.Error("company request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
