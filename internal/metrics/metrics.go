package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder はリクエスト層に注入する観測の窓口。
// コアのusecaseはこれに触らない。
type Recorder interface {
	IncRequest(route string, method string)
	ObserveRequest(route string, method string, seconds float64)
	IncUserAction(action string, status string)
	IncCartOp(op string, status string)
	IncProductOp(op string)
}

// PrometheusRecorder はRecorderのprometheus実装。
// 専用Registryを持ち、グローバルレジストリは汚さない。
type PrometheusRecorder struct {
	registry *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	userActions *prometheus.CounterVec
	cartOps     *prometheus.CounterVec
	productOps  *prometheus.CounterVec
}

func NewPrometheusRecorder() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),

		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_requests_total",
				Help: "Total number of requests by route and method",
			},
			[]string{"route", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_request_duration_seconds",
				Help:    "Request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		userActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_actions_total",
				Help: "Total user actions",
			},
			[]string{"action", "status"},
		),
		cartOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cart_operations_total",
				Help: "Total cart operations",
			},
			[]string{"operation", "status"},
		),
		productOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "product_operations_total",
				Help: "Total product operations",
			},
			[]string{"operation"},
		),
	}

	r.registry.MustRegister(
		r.requests,
		r.duration,
		r.userActions,
		r.cartOps,
		r.productOps,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)

	return r
}

func (r *PrometheusRecorder) IncRequest(route string, method string) {
	r.requests.WithLabelValues(route, method).Inc()
}

func (r *PrometheusRecorder) ObserveRequest(route string, method string, seconds float64) {
	r.duration.WithLabelValues(route, method).Observe(seconds)
}

func (r *PrometheusRecorder) IncUserAction(action string, status string) {
	r.userActions.WithLabelValues(action, status).Inc()
}

func (r *PrometheusRecorder) IncCartOp(op string, status string) {
	r.cartOps.WithLabelValues(op, status).Inc()
}

func (r *PrometheusRecorder) IncProductOp(op string) {
	r.productOps.WithLabelValues(op).Inc()
}

// Handler は/metrics用のハンドラを返す。
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// NopRecorder はテスト用の何もしない実装。
type NopRecorder struct{}

func (NopRecorder) IncRequest(route string, method string)                  {}
func (NopRecorder) ObserveRequest(route string, method string, sec float64) {}
func (NopRecorder) IncUserAction(action string, status string)              {}
func (NopRecorder) IncCartOp(op string, status string)                      {}
func (NopRecorder) IncProductOp(op string)                                  {}
