package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogcore/pkg/metrics"
)

func TestHTTPMetrics(t *testing.T) {
	m := metrics.NewHTTP("blog_test")

	m.Started()
	m.Finished("GET", "/api/v1/blogs/:id", "200", 0.01)
	m.Started()
	m.Finished("GET", "/api/v1/blogs/:id", "404", 0.02)
	m.Started()
	m.Finished("GET", "/api/v1/blogs/:id", "200", 0.03)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Requests().WithLabelValues("GET", "/api/v1/blogs/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests().WithLabelValues("GET", "/api/v1/blogs/:id", "404")), 0)
}

func TestHTTPMetricsHandler(t *testing.T) {
	m := metrics.NewHTTP("blog_test")
	m.Started()
	m.Finished("POST", "/api/v1/blogs", "201", 0.01)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "blog_test_http_requests_total")
	assert.Contains(t, string(body), `route="/api/v1/blogs"`)
}
