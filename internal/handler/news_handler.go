package handler

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolhub/internal/service"
	"github.com/ashwinyue/toolhub/internal/service/news"
)

// NewsHandler 公开的资讯接口
type NewsHandler struct {
	svc *service.Services
}

// NewNewsHandler 创建资讯处理器
func NewNewsHandler(svc *service.Services) *NewsHandler {
	return &NewsHandler{svc: svc}
}

// ListNews 资讯列表，支持 category 与 featured 筛选
// GET /api/v1/news
func (h *NewsHandler) ListNews(c *gin.Context) {
	filter := news.NewsFilter{Category: c.Query("category")}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			BadRequest(c, "Invalid featured flag")
			return
		}
		filter.Featured = &featured
	}
	Success(c, h.svc.News.ListNewsArticles(filter))
}

// GetNews 资讯详情
// GET /api/v1/news/:id
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	article, found := h.svc.News.GetNewsArticleByID(id)
	if !found {
		NotFound(c, "Article not found")
		return
	}
	Success(c, article)
}

// ListTrends 技术趋势
// GET /api/v1/trends
func (h *NewsHandler) ListTrends(c *gin.Context) {
	Success(c, h.svc.News.GetTechTrends())
}

// ListFeatures 即将上线的功能
// GET /api/v1/features
func (h *NewsHandler) ListFeatures(c *gin.Context) {
	Success(c, h.svc.News.GetUpcomingFeatures())
}

// ========== 管理接口 ==========

// contentOps 单个内容集合的增删改查
type contentOps struct {
	label  string
	list   func() any
	get    func(id int) (any, bool)
	create func(raw []byte) (any, error)
	update func(id int, patch []byte) (any, bool, error)
	remove func(id int) bool
}

func newContentOps[T any](
	label string,
	list func() []T,
	get func(int) (T, bool),
	create func(T) T,
	update func(int, []byte) (T, bool, error),
	remove func(int) bool,
) contentOps {
	return contentOps{
		label: label,
		list:  func() any { return list() },
		get: func(id int) (any, bool) {
			return get(id)
		},
		create: func(raw []byte) (any, error) {
			var item T
			if err := json.Unmarshal(raw, &item); err != nil {
				return nil, err
			}
			return create(item), nil
		},
		update: func(id int, patch []byte) (any, bool, error) {
			return update(id, patch)
		},
		remove: remove,
	}
}

// AdminNewsHandler 资讯、趋势、功能预告的管理接口
type AdminNewsHandler struct {
	svc *service.Services
	ops map[news.Kind]contentOps
}

// NewAdminNewsHandler 创建内容管理处理器
func NewAdminNewsHandler(svc *service.Services) *AdminNewsHandler {
	m := svc.News
	return &AdminNewsHandler{
		svc: svc,
		ops: map[news.Kind]contentOps{
			news.KindNews: newContentOps("Article",
				m.GetNewsArticles, m.GetNewsArticleByID, m.CreateNewsArticle, m.UpdateNewsArticle, m.DeleteNewsArticle),
			news.KindTrends: newContentOps("Trend",
				m.GetTechTrends, m.GetTechTrendByID, m.CreateTechTrend, m.UpdateTechTrend, m.DeleteTechTrend),
			news.KindFeatures: newContentOps("Feature",
				m.GetUpcomingFeatures, m.GetUpcomingFeatureByID, m.CreateUpcomingFeature, m.UpdateUpcomingFeature, m.DeleteUpcomingFeature),
		},
	}
}

// List GET /admin/api/{kind}
func (h *AdminNewsHandler) List(kind news.Kind) gin.HandlerFunc {
	ops := h.ops[kind]
	return func(c *gin.Context) {
		Success(c, ops.list())
	}
}

// Get GET /admin/api/{kind}/:id
func (h *AdminNewsHandler) Get(kind news.Kind) gin.HandlerFunc {
	ops := h.ops[kind]
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		item, found := ops.get(id)
		if !found {
			NotFound(c, ops.label+" not found")
			return
		}
		Success(c, item)
	}
}

// Create POST /admin/api/{kind}
// 请求体中的 id 会被忽略
func (h *AdminNewsHandler) Create(kind news.Kind) gin.HandlerFunc {
	ops := h.ops[kind]
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			BadRequest(c, "Invalid parameters: "+err.Error())
			return
		}
		item, err := ops.create(raw)
		if err != nil {
			BadRequest(c, "Invalid parameters: "+err.Error())
			return
		}
		Created(c, item)
	}
}

// Update PUT /admin/api/{kind}/:id
// 请求体按 JSON merge patch 合并，id 保持不变
func (h *AdminNewsHandler) Update(kind news.Kind) gin.HandlerFunc {
	ops := h.ops[kind]
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		patch, err := io.ReadAll(c.Request.Body)
		if err != nil {
			BadRequest(c, "Invalid parameters: "+err.Error())
			return
		}
		item, found, err := ops.update(id, patch)
		if err != nil {
			BadRequest(c, "Invalid parameters: "+err.Error())
			return
		}
		if !found {
			NotFound(c, ops.label+" not found")
			return
		}
		Success(c, item)
	}
}

// Delete DELETE /admin/api/{kind}/:id
func (h *AdminNewsHandler) Delete(kind news.Kind) gin.HandlerFunc {
	ops := h.ops[kind]
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if !ops.remove(id) {
			NotFound(c, ops.label+" not found")
			return
		}
		NoContent(c)
	}
}

// Reload POST /admin/api/{kind}/reload
func (h *AdminNewsHandler) Reload(kind news.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.svc.News.Reload(kind); err != nil {
			Error(c, err)
			return
		}
		Success(c, h.ops[kind].list())
	}
}

// parseID 解析整数路径参数，失败时已写入 400 响应
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
