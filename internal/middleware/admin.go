package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminPathPrefix 受保护的管理路径前缀
const AdminPathPrefix = "/admin"

const disabledMessage = "Admin interface is disabled"

// TokenValidator 校验管理后台 Bearer 令牌
type TokenValidator interface {
	ValidateToken(ctx context.Context, bearer string) error
}

func isAdminPath(path string) bool {
	return strings.HasPrefix(path, AdminPathPrefix)
}

// AdminGuard 管理后台开关
// 关闭时所有 /admin 路径返回 404，开启时放行，成功响应附加安全响应头
func AdminGuard(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		if !enabled {
			rejectDisabled(c)
			return
		}
		w := withSecurityHeaders(c)
		c.Next()
		w.finish()
	}
}

// StrictAdminGuard 生产环境使用的管理后台守卫
// 在 AdminGuard 基础上校验 Referer 同源以及 Bearer 令牌，loginPath 免令牌校验
func StrictAdminGuard(enabled bool, validator TokenValidator, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		if !enabled {
			rejectDisabled(c)
			return
		}
		w := withSecurityHeaders(c)

		if referer := c.GetHeader("Referer"); referer != "" && !sameHost(referer, c.Request.Host) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": http.StatusForbidden,
				"msg":  "Forbidden",
			})
			return
		}

		if c.Request.URL.Path != loginPath {
			if err := validator.ValidateToken(c.Request.Context(), BearerToken(c)); err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"code": http.StatusUnauthorized,
					"msg":  "Unauthorized",
				})
				return
			}
		}

		c.Next()
		w.finish()
	}
}

// BearerToken 从 Authorization 头提取 Bearer 令牌，缺失时返回空串
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func rejectDisabled(c *gin.Context) {
	c.Header("X-Robots-Tag", "noindex, nofollow")
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
		"code": http.StatusNotFound,
		"msg":  disabledMessage,
	})
}

// securityHeaderWriter 在响应状态码确定后、写出之前补充安全响应头
// 状态码 >= 400 的响应不附加
type securityHeaderWriter struct {
	gin.ResponseWriter
	applied bool
}

func withSecurityHeaders(c *gin.Context) *securityHeaderWriter {
	w := &securityHeaderWriter{ResponseWriter: c.Writer}
	c.Writer = w
	return w
}

// finish 处理没有写出响应体的情况，例如 204
func (w *securityHeaderWriter) finish() {
	w.apply(w.Status())
}

func (w *securityHeaderWriter) apply(status int) {
	if w.applied || w.ResponseWriter.Written() {
		return
	}
	w.applied = true
	if status >= http.StatusBadRequest {
		return
	}
	h := w.Header()
	h.Set("X-Robots-Tag", "noindex, nofollow")
	h.Set("X-Frame-Options", "DENY")
	h.Set("X-Content-Type-Options", "nosniff")
}

func (w *securityHeaderWriter) WriteHeaderNow() {
	w.apply(w.Status())
	w.ResponseWriter.WriteHeaderNow()
}

func (w *securityHeaderWriter) Write(data []byte) (int, error) {
	w.apply(w.Status())
	return w.ResponseWriter.Write(data)
}

func (w *securityHeaderWriter) WriteString(s string) (int, error) {
	w.apply(w.Status())
	return w.ResponseWriter.WriteString(s)
}

// 无法解析的 Referer 视为跨站
func sameHost(referer, host string) bool {
	u, err := url.Parse(referer)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, host)
}
