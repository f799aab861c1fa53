package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"blogcore/pkg/metrics"
)

// NewMetricsMiddleware считает запросы и их длительность по шаблону маршрута.
func NewMetricsMiddleware(m *metrics.HTTP) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()
		m.Started()

		err := ctx.Next()

		m.Finished(
			ctx.Method(),
			ctx.Route().Path,
			strconv.Itoa(ctx.Response().StatusCode()),
			time.Since(start).Seconds(),
		)

		return err
	}
}
