// Package handler exposes the currency reference list over HTTP.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dividend_backend/internal/api"
	"dividend_backend/internal/feature/currency/domain/entity"
	"dividend_backend/internal/feature/currency/usecase"
	"dividend_backend/internal/platform/logger"
)

// CurrencyUsecase is the currency behaviour the handler needs.
type CurrencyUsecase interface {
	Create(ctx context.Context, name string) (*entity.Currency, error)
	List(ctx context.Context) ([]entity.Currency, error)
}

// CurrencyHandler serves /currencies.
type CurrencyHandler struct {
	uc CurrencyUsecase
}

// NewCurrencyHandler returns a CurrencyHandler.
func NewCurrencyHandler(uc CurrencyUsecase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

// List handles GET /currencies.
func (h *CurrencyHandler) List(c *gin.Context) {
	list, err := h.uc.List(c.Request.Context())
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("list currencies failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	out := make([]api.CurrencyResponse, 0, len(list))
	for _, cur := range list {
		out = append(out, api.CurrencyResponse{ID: cur.ID, Name: cur.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /currencies. A duplicate code is reported as an informational 409.
func (h *CurrencyHandler) Create(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	var req api.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("currency validation failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	cur, err := h.uc.Create(c.Request.Context(), req.Name)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, api.CurrencyResponse{ID: cur.ID, Name: cur.Name})
	case errors.Is(err, usecase.ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrCurrencyAlreadyExists):
		c.JSON(http.StatusConflict, api.MessageResponse{Message: fmt.Sprintf("currency %s has already been added", req.Name)})
	default:
		log.Error("create currency failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
