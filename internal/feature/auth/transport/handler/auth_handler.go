// Package handler exposes signup and login over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dividend_backend/internal/api"
	"dividend_backend/internal/feature/auth/usecase"
	"dividend_backend/internal/platform/logger"
)

// AuthUsecase is the auth behaviour the handler needs.
type AuthUsecase interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler serves /signup and /login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler returns an AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup は新規ユーザーを登録します。
//   - リクエスト不正・パスワードが弱い場合は 400
//   - それ以外の失敗は 409（原因は返さない）
//   - 成功時は 201
func (h *AuthHandler) Signup(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("signup validation failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrWeakPassword) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		log.Warn("signup failed", "error", err)
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	log.Info("user signup successful")
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login は認証情報を検証し、Bearerトークンを返します。
func (h *AuthHandler) Login(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("login validation failed", "error", err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			log.Warn("login failed", "error", err)
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
			return
		}
		log.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
