package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDAndLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestID(), LoggingMiddleware(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(r, http.MethodGet, "/ping?x=1", nil)
	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, id, fields["request_id"])

	// 沿用客户端传入的请求ID
	w = serve(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	// 404 记为 warn
	serve(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)

	r := gin.New()
	r.Use(RecoveryMiddleware(zap.New(core)))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":500,"msg":"internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/api/v1/tools", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/admin/api/tools", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/api/v1/tools", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/admin/api/tools", nil)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

type recordingObserver struct {
	routes   []string
	statuses []int
}

func (o *recordingObserver) ObserveRequest(_, route string, status int, _ time.Duration) {
	o.routes = append(o.routes, route)
	o.statuses = append(o.statuses, status)
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &recordingObserver{}

	r := gin.New()
	r.Use(MetricsMiddleware(obs))
	r.GET("/api/v1/tools/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/api/v1/tools/figma", nil)
	serve(r, http.MethodGet, "/nope", nil)

	assert.Equal(t, []string{"/api/v1/tools/:id", ""}, obs.routes)
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, obs.statuses)
}
