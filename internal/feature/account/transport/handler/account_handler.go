// Package handler exposes a user's brokerage accounts over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dividend_backend/internal/api"
	"dividend_backend/internal/feature/account/domain/entity"
	"dividend_backend/internal/feature/account/usecase"
	jwtmw "dividend_backend/internal/platform/jwt"
	"dividend_backend/internal/platform/logger"
)

// AccountUsecase is the account behaviour the handler needs.
type AccountUsecase interface {
	Create(ctx context.Context, userID uint, name string) (*entity.Account, error)
	List(ctx context.Context, userID uint) ([]entity.Account, error)
	Delete(ctx context.Context, userID, id uint) error
}

// AccountHandler serves /accounts.
type AccountHandler struct {
	uc AccountUsecase
}

// NewAccountHandler returns an AccountHandler.
func NewAccountHandler(uc AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// List handles GET /accounts.
func (h *AccountHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	list, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]api.AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, api.AccountResponse{ID: a.ID, Name: a.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req api.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.FromContext(c.Request.Context()).Warn("account validation failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	a, err := h.uc.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.AccountResponse{ID: a.ID, Name: a.Name})
}

// Delete handles DELETE /accounts/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid account id"})
		return
	}
	if err := h.uc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidName):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "you can only modify your own accounts"})
	case errors.Is(err, usecase.ErrAccountAlreadyExists):
		c.JSON(http.StatusConflict, api.MessageResponse{Message: "an account with this name already exists"})
	case errors.Is(err, usecase.ErrAccountInUse):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		logger.FromContext(c.Request.Context()).Error("account request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
