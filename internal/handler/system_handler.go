package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolhub/internal/service"
)

// SystemHandler 系统处理器
type SystemHandler struct {
	svc *service.Services
}

// NewSystemHandler 创建系统处理器
func NewSystemHandler(svc *service.Services) *SystemHandler {
	return &SystemHandler{svc: svc}
}

// HealthInfo 健康检查信息
type HealthInfo struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Tools   int    `json:"tools"`
}

// Health 健康检查
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	Success(c, HealthInfo{
		Status:  "ok",
		Name:    h.svc.Config.App.Name,
		Version: h.svc.Config.App.Version,
		Tools:   len(h.svc.Tools.GetAllTools()),
	})
}
