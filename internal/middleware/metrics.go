package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver 记录 HTTP 请求指标
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// MetricsMiddleware 指标中间件，按路由模板聚合
func MetricsMiddleware(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
