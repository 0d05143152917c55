package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/metrics"

	"github.com/stretchr/testify/assert"
)

func TestPrometheusRecorder_ExposesRecordedMetrics(t *testing.T) {
	rec := metrics.NewPrometheusRecorder()

	rec.IncRequest("/products", http.MethodGet)
	rec.ObserveRequest("/products", http.MethodGet, 0.05)
	rec.IncUserAction("login", "success")
	rec.IncCartOp("add", "success")
	rec.IncProductOp("create")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `backend_requests_total{method="GET",route="/products"} 1`)
	assert.Contains(t, body, "backend_request_duration_seconds_bucket")
	assert.Contains(t, body, `user_actions_total{action="login",status="success"} 1`)
	assert.Contains(t, body, `cart_operations_total{operation="add",status="success"} 1`)
	assert.Contains(t, body, `product_operations_total{operation="create"} 1`)
}

func TestNewPrometheusRecorder_IndependentRegistries(t *testing.T) {
	//専用Registryなので複数インスタンスでも衝突しない
	assert.NotPanics(t, func() {
		_ = metrics.NewPrometheusRecorder()
		_ = metrics.NewPrometheusRecorder()
	})
}
