// Package handler exposes a user's dividend records over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dividend_backend/internal/api"
	"dividend_backend/internal/feature/dividend/domain/entity"
	"dividend_backend/internal/feature/dividend/usecase"
	jwtmw "dividend_backend/internal/platform/jwt"
	"dividend_backend/internal/platform/logger"
)

const dateLayout = "2006-01-02"

// DividendUsecase is the dividend behaviour the handler needs.
type DividendUsecase interface {
	Create(ctx context.Context, userID uint, in usecase.DividendInput) (*entity.DividendView, error)
	Update(ctx context.Context, userID, id uint, in usecase.DividendInput) (*entity.DividendView, error)
	Delete(ctx context.Context, userID, id uint) error
	List(ctx context.Context, userID uint, f usecase.ListFilter) ([]entity.DividendView, error)
}

// DividendHandler serves /dividends.
type DividendHandler struct {
	uc DividendUsecase
}

// NewDividendHandler returns a DividendHandler.
func NewDividendHandler(uc DividendUsecase) *DividendHandler {
	return &DividendHandler{uc: uc}
}

func toResponse(v *entity.DividendView) api.DividendResponse {
	return api.DividendResponse{
		ID:          v.ID,
		Ticker:      v.Ticker,
		CompanyName: v.CompanyName,
		AccountID:   v.AccountID,
		Account:     v.AccountName,
		Currency:    v.CurrencyName,
		ReceivedOn:  v.ReceivedOn.UTC().Format(dateLayout),
		Payoff:      v.Payoff,
		Shares:      v.Shares,
		PerShare:    v.PerShare,
	}
}

// List handles GET /dividends.
func (h *DividendHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	params, err := api.BindListDividendsParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	var f usecase.ListFilter
	if params.Start != nil {
		t := params.Start.Time
		f.Start = &t
	}
	if params.End != nil {
		t := params.End.Time
		f.End = &t
	}
	if params.Limit != nil {
		f.Limit = *params.Limit
	}
	if params.Currency != nil {
		f.Currency = *params.Currency
	}

	list, err := h.uc.List(c.Request.Context(), userID, f)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]api.DividendResponse, 0, len(list))
	for i := range list {
		out = append(out, toResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /dividends.
func (h *DividendHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	in, ok := bindInput(c)
	if !ok {
		return
	}

	v, err := h.uc.Create(c.Request.Context(), userID, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	logger.FromContext(c.Request.Context()).Info("dividend recorded", "dividend_id", v.ID)
	c.JSON(http.StatusCreated, toResponse(v))
}

// Update handles PUT /dividends/:id.
func (h *DividendHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindInput(c)
	if !ok {
		return
	}

	v, err := h.uc.Update(c.Request.Context(), userID, id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(v))
}

// Delete handles DELETE /dividends/:id.
func (h *DividendHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid dividend id"})
		return 0, false
	}
	return uint(id), true
}

func bindInput(c *gin.Context) (usecase.DividendInput, bool) {
	var req api.DividendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.FromContext(c.Request.Context()).Warn("dividend validation failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return usecase.DividendInput{}, false
	}
	receivedOn, err := time.Parse(dateLayout, req.ReceivedOn)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "received_on must be YYYY-MM-DD"})
		return usecase.DividendInput{}, false
	}
	return usecase.DividendInput{
		Ticker:     req.Ticker,
		AccountID:  req.AccountID,
		Currency:   req.Currency,
		ReceivedOn: receivedOn,
		Payoff:     req.Payoff,
		Shares:     req.Shares,
		PerShare:   req.PerShare,
	}, true
}

func (h *DividendHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotOwner):
		logger.FromContext(c.Request.Context()).Warn("dividend access denied", "error", err)
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrDividendNotFound),
		errors.Is(err, usecase.ErrCompanyNotFound),
		errors.Is(err, usecase.ErrCurrencyNotFound),
		errors.Is(err, usecase.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidPayoff),
		errors.Is(err, usecase.ErrPayoffRequired),
		errors.Is(err, usecase.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		logger.FromContext(c.Request.Context()).Error("dividend request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
