package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogcore/internal/blog/adapters/http/middleware"
	"blogcore/pkg/logger"
	"blogcore/pkg/metrics"
)

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := metrics.NewHTTP("blog_mw_test")

	app := fiber.New()
	app.Use(middleware.NewMetricsMiddleware(m))
	app.Get("/blogs/:id", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, target := range []string{"/blogs/1", "/blogs/2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, http.NoBody))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.Requests().WithLabelValues("GET", "/blogs/:id", "200")), 0)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string

	app := fiber.New()
	app.Use(middleware.NewRequestIDMiddleware())
	app.Get("/", func(c fiber.Ctx) error {
		seen, _ = logger.GetRequestID(c.Context())
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestLoggerMiddlewareAppliesErrorHandler(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewLoggerMiddleware())
	app.Get("/", func(fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewRecoveryMiddleware())
	app.Get("/", func(fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
