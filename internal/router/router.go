package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolhub/internal/handler"
	"github.com/ashwinyue/toolhub/internal/metrics"
	"github.com/ashwinyue/toolhub/internal/middleware"
	"github.com/ashwinyue/toolhub/internal/service/news"
)

// LoginPath 管理员登录路径，严格模式下免令牌校验
const LoginPath = "/admin/api/login"

// Options 路由配置
type Options struct {
	Logger *zap.Logger
	// Metrics 与 Gatherer 为空时不暴露 /metrics
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	AdminEnabled bool
	// StrictAdmin 生产环境开启，附加 Referer 与令牌校验
	StrictAdmin    bool
	TokenValidator middleware.TokenValidator
}

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()

	// 中间件
	r.Use(middleware.RequestID())
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingMiddleware(logger))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	r.Use(middleware.CORSMiddleware())
	if opts.StrictAdmin {
		r.Use(middleware.StrictAdminGuard(opts.AdminEnabled, opts.TokenValidator, LoginPath))
	} else {
		r.Use(middleware.AdminGuard(opts.AdminEnabled))
	}

	// 健康检查
	r.GET("/health", h.System.Health)
	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Tool 工具目录
		tools := v1.Group("/tools")
		{
			tools.GET("", h.Catalog.ListTools)
			tools.GET("/featured", h.Catalog.ListFeaturedTools)
			tools.GET("/search", h.Catalog.SearchTools)
			tools.GET("/stats", h.Catalog.GetToolStats)
			tools.GET("/:id", h.Catalog.GetTool)
			tools.GET("/:id/related", h.Catalog.GetRelatedTools)
		}

		// Category 分类
		categories := v1.Group("/categories")
		{
			categories.GET("", h.Catalog.ListCategories)
			categories.GET("/:id/tools", h.Catalog.ListCategoryTools)
		}

		// News 资讯
		v1.GET("/news", h.News.ListNews)
		v1.GET("/news/:id", h.News.GetNews)
		v1.GET("/trends", h.News.ListTrends)
		v1.GET("/features", h.News.ListFeatures)
	}

	// Admin 管理后台，由守卫中间件统一拦截
	admin := r.Group("/admin/api")
	{
		admin.POST("/login", h.Auth.Login)
		admin.POST("/logout", h.Auth.Logout)

		tools := admin.Group("/tools")
		{
			tools.GET("", h.AdminTool.ListTools)
			tools.POST("", h.AdminTool.CreateTool)
			tools.PUT("/weights", h.AdminTool.UpdateWeights)
			tools.POST("/validate", h.AdminTool.ValidateTool)
			tools.GET("/export", h.AdminTool.ExportTools)
			tools.GET("/:id", h.AdminTool.GetTool)
			tools.PUT("/:id", h.AdminTool.UpdateTool)
			tools.DELETE("/:id", h.AdminTool.DeleteTool)
			tools.POST("/:id/toggle-featured", h.AdminTool.ToggleFeatured)
			tools.POST("/:id/toggle-status", h.AdminTool.ToggleStatus)
		}

		admin.GET("/categories", h.AdminTool.ListCategories)

		content := map[string]news.Kind{
			"/news":     news.KindNews,
			"/trends":   news.KindTrends,
			"/features": news.KindFeatures,
		}
		for path, kind := range content {
			g := admin.Group(path)
			g.GET("", h.AdminNews.List(kind))
			g.POST("", h.AdminNews.Create(kind))
			g.POST("/reload", h.AdminNews.Reload(kind))
			g.GET("/:id", h.AdminNews.Get(kind))
			g.PUT("/:id", h.AdminNews.Update(kind))
			g.DELETE("/:id", h.AdminNews.Delete(kind))
		}
	}

	return r
}
