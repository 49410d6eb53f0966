package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolhub/internal/service"
	"github.com/ashwinyue/toolhub/internal/service/catalog"
)

// CatalogHandler 公开的工具目录接口
type CatalogHandler struct {
	svc *service.Services
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(svc *service.Services) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) catalog() *catalog.Catalog {
	return h.svc.Catalog.Current()
}

// ListTools 列出上架工具
// GET /api/v1/tools
func (h *CatalogHandler) ListTools(c *gin.Context) {
	Success(c, h.catalog().GetAllTools())
}

// ListFeaturedTools 推荐工具
// GET /api/v1/tools/featured
func (h *CatalogHandler) ListFeaturedTools(c *gin.Context) {
	Success(c, h.catalog().GetFeaturedTools())
}

// SearchTools 搜索工具
// GET /api/v1/tools/search?q=
func (h *CatalogHandler) SearchTools(c *gin.Context) {
	Success(c, h.catalog().SearchTools(c.Query("q")))
}

// GetToolStats 统计信息
// GET /api/v1/tools/stats
func (h *CatalogHandler) GetToolStats(c *gin.Context) {
	Success(c, h.catalog().GetToolStats())
}

// GetTool 获取工具详情
// GET /api/v1/tools/:id
func (h *CatalogHandler) GetTool(c *gin.Context) {
	t, ok := h.catalog().GetToolByID(c.Param("id"))
	if !ok {
		NotFound(c, "Tool not found")
		return
	}
	Success(c, t)
}

// GetRelatedTools 相关工具
// GET /api/v1/tools/:id/related?limit=
func (h *CatalogHandler) GetRelatedTools(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			BadRequest(c, "Invalid limit")
			return
		}
		limit = n
	}
	Success(c, h.catalog().GetRelatedTools(c.Param("id"), limit))
}

// ListCategories 分类列表
// GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	Success(c, h.catalog().GetToolCategories())
}

// ListCategoryTools 分类下的工具
// GET /api/v1/categories/:id/tools
func (h *CatalogHandler) ListCategoryTools(c *gin.Context) {
	Success(c, h.catalog().GetToolsByCategory(c.Param("id")))
}
