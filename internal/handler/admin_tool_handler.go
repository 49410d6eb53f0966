package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolhub/internal/service"
	"github.com/ashwinyue/toolhub/internal/service/tool"
)

// AdminToolHandler 工具管理接口
type AdminToolHandler struct {
	svc *service.Services
}

// NewAdminToolHandler 创建工具管理处理器
func NewAdminToolHandler(svc *service.Services) *AdminToolHandler {
	return &AdminToolHandler{svc: svc}
}

// ListTools 全部工具，包含下架和测试中的
// GET /admin/api/tools
func (h *AdminToolHandler) ListTools(c *gin.Context) {
	Success(c, h.svc.Tools.GetAllTools())
}

// GetTool GET /admin/api/tools/:id
func (h *AdminToolHandler) GetTool(c *gin.Context) {
	t, ok := h.svc.Tools.GetToolByID(c.Param("id"))
	if !ok {
		NotFound(c, "Tool not found")
		return
	}
	Success(c, t)
}

// CreateTool 新建工具
// POST /admin/api/tools
func (h *AdminToolHandler) CreateTool(c *gin.Context) {
	var req tool.ToolInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	if result := tool.ValidateTool(req); !result.IsValid {
		ValidationFailed(c, result.Errors)
		return
	}

	Created(c, h.svc.Tools.AddTool(req))
}

// UpdateTool 部分更新工具
// PUT /admin/api/tools/:id
func (h *AdminToolHandler) UpdateTool(c *gin.Context) {
	id := c.Param("id")
	current, ok := h.svc.Tools.GetToolByID(id)
	if !ok {
		NotFound(c, "Tool not found")
		return
	}

	var req tool.ToolUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	if result := tool.ValidateUpdate(tool.InputFromTool(current), req); !result.IsValid {
		ValidationFailed(c, result.Errors)
		return
	}

	updated, ok := h.svc.Tools.UpdateTool(id, req)
	if !ok {
		NotFound(c, "Tool not found")
		return
	}
	Success(c, updated)
}

// DeleteTool DELETE /admin/api/tools/:id
func (h *AdminToolHandler) DeleteTool(c *gin.Context) {
	if !h.svc.Tools.DeleteTool(c.Param("id")) {
		NotFound(c, "Tool not found")
		return
	}
	NoContent(c)
}

// ToggleFeatured POST /admin/api/tools/:id/toggle-featured
func (h *AdminToolHandler) ToggleFeatured(c *gin.Context) {
	h.toggle(c, h.svc.Tools.ToggleFeatured)
}

// ToggleStatus POST /admin/api/tools/:id/toggle-status
func (h *AdminToolHandler) ToggleStatus(c *gin.Context) {
	h.toggle(c, h.svc.Tools.ToggleStatus)
}

func (h *AdminToolHandler) toggle(c *gin.Context, fn func(id string) bool) {
	id := c.Param("id")
	if !fn(id) {
		NotFound(c, "Tool not found")
		return
	}
	t, _ := h.svc.Tools.GetToolByID(id)
	Success(c, t)
}

// UpdateWeights 批量调整权重，未知ID被忽略，任一权重越界时整批拒绝
// PUT /admin/api/tools/weights
func (h *AdminToolHandler) UpdateWeights(c *gin.Context) {
	var req []tool.WeightUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}
	if result := tool.ValidateWeights(req); !result.IsValid {
		ValidationFailed(c, result.Errors)
		return
	}

	h.svc.Tools.UpdateWeights(req)
	Success(c, h.svc.Tools.GetAllTools())
}

// ValidateTool 只校验不保存
// POST /admin/api/tools/validate
func (h *AdminToolHandler) ValidateTool(c *gin.Context) {
	var req tool.ToolInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}
	Success(c, tool.ValidateTool(req))
}

// ExportTools 导出种子数据
// GET /admin/api/tools/export?format=go|yaml
func (h *AdminToolHandler) ExportTools(c *gin.Context) {
	switch c.DefaultQuery("format", "go") {
	case "go":
		c.Header("Content-Disposition", `attachment; filename="tools.go"`)
		c.Data(http.StatusOK, "text/x-go; charset=utf-8", []byte(h.svc.Tools.ExportToolsCode()))
	case "yaml":
		out, err := h.svc.Tools.ExportToolsYAML()
		if err != nil {
			Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="tools.yaml"`)
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
	default:
		BadRequest(c, "Unsupported export format")
	}
}

// CategoryForm 新建工具表单所需数据
type CategoryForm struct {
	Options  []tool.CategoryOption `json:"options"`
	Template tool.ToolInput        `json:"template"`
}

// ListCategories GET /admin/api/categories
func (h *AdminToolHandler) ListCategories(c *gin.Context) {
	Success(c, CategoryForm{
		Options:  tool.CategoryOptions(),
		Template: tool.DefaultToolTemplate(),
	})
}
