package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolhub/internal/middleware"
	"github.com/ashwinyue/toolhub/internal/service"
	"github.com/ashwinyue/toolhub/internal/service/auth"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	svc *service.Services
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(svc *service.Services) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login 管理员登录
// POST /admin/api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	resp, err := h.svc.Auth.Login(&req)
	switch {
	case errors.Is(err, auth.ErrLoginDisabled):
		Forbidden(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(c, err.Error())
	case err != nil:
		Error(c, err)
	default:
		Success(c, resp)
	}
}

// Logout 注销当前登录令牌
// POST /admin/api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.svc.Auth.Logout(c.Request.Context(), middleware.BearerToken(c))
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(c, err.Error())
	case err != nil:
		Error(c, err)
	default:
		NoContent(c)
	}
}
