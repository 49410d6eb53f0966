// Package metrics 定义 Prometheus 指标
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ashwinyue/toolhub/internal/model"
)

const namespace = "toolhub"

// Metrics 服务指标集合
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	catalogMutations prometheus.Counter
	catalogTools     *prometheus.GaugeVec
}

// New 在给定的 registerer 上注册指标，nil 时使用默认 registerer
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		catalogMutations: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_mutations_total",
				Help:      "Total number of tool catalog change notifications",
			},
		),
		catalogTools: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_tools",
				Help:      "Current number of tools in the catalog by status",
			},
			[]string{"status"},
		),
	}
}

// ObserveRequest 记录一次 HTTP 请求
// route 为 gin 的路由模板，未匹配时为空
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// OnCatalogChanged 工具管理器监听器，刷新目录规模
func (m *Metrics) OnCatalogChanged(tools []model.Tool) {
	m.catalogMutations.Inc()
	m.SetCatalogSize(tools)
}

// SetCatalogSize 按状态统计工具数量
func (m *Metrics) SetCatalogSize(tools []model.Tool) {
	counts := map[model.ToolStatus]int{
		model.StatusActive:   0,
		model.StatusInactive: 0,
		model.StatusBeta:     0,
	}
	for _, t := range tools {
		counts[t.Status]++
	}
	for status, n := range counts {
		m.catalogTools.WithLabelValues(string(status)).Set(float64(n))
	}
}
