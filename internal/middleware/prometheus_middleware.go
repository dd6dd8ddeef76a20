package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnmatchedRoute - метка path для запросов мимо маршрутов. Сырой URL в
// метку не попадает, иначе сканер портов раздует число серий.
const UnmatchedRoute = "unmatched"

// Ключи gin.Context, в которые обработчик действия кладёт имя действия и
// результат ("queued", "rejected", "unknown"). Для неизвестных имён
// обработчик пишет "unknown" вместо присланной строки.
const (
	ActionNameKey   = "action_name"
	ActionResultKey = "action_result"
)

// PrometheusMiddleware считает HTTP-запросы отладочного сервера.
//
// Метрики (с префиксом service):
//   - http_request_duration_seconds{method,path,status}
//   - http_requests_inflight
//   - http_request_errors_total{method,path,status}, только 4xx/5xx
//   - actions_total{action,result}, для POST /actions/:name
type PrometheusMiddleware struct {
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
	errors   *prometheus.CounterVec
	actions  *prometheus.CounterVec
}

// NewPrometheusMiddleware создаёт middleware и регистрирует метрики в reg.
func NewPrometheusMiddleware(service string, reg prometheus.Registerer) *PrometheusMiddleware {
	pm := &PrometheusMiddleware{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: service,
			Name:      "http_request_duration_seconds",
			Help:      "Длительность HTTP-запросов.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"method", "path", "status"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: service,
			Name:      "http_requests_inflight",
			Help:      "Запросы в обработке.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: service,
			Name:      "http_request_errors_total",
			Help:      "Запросы со статусом 4xx/5xx.",
		}, []string{"method", "path", "status"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: service,
			Name:      "actions_total",
			Help:      "Игровые действия, пришедшие через HTTP.",
		}, []string{"action", "result"}),
	}

	reg.MustRegister(pm.duration, pm.inflight, pm.errors, pm.actions)
	return pm
}

// Handler возвращает gin.HandlerFunc для router.Use().
func (pm *PrometheusMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pm.inflight.Inc()
		defer pm.inflight.Dec()

		start := time.Now()
		c.Next()

		path := routeLabel(c)
		status := c.Writer.Status()
		labels := []string{c.Request.Method, path, strconv.Itoa(status)}

		pm.duration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		if status >= 400 {
			pm.errors.WithLabelValues(labels...).Inc()
		}

		if result := c.GetString(ActionResultKey); result != "" {
			pm.actions.WithLabelValues(c.GetString(ActionNameKey), result).Inc()
		}
	}
}

// RegisterMetricsEndpoint добавляет GET /metrics, отдающий метрики из gatherer.
func (pm *PrometheusMiddleware) RegisterMetricsEndpoint(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func routeLabel(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return UnmatchedRoute
}
