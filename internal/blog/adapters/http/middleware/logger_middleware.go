package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"blogcore/pkg/logger"
)

// NewLoggerMiddleware создает промежуточное ПО для логирования HTTP запросов.
// Ошибку обработчика оно сразу передает в ErrorHandler приложения, чтобы записать итоговый статус.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		start := time.Now()

		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)

		log.Debug(requestCtx, "Request started")

		if err := ctx.Next(); err != nil {
			if handleErr := ctx.App().ErrorHandler(ctx, err); handleErr != nil {
				log.Error(requestCtx, "Failed to send error response", zap.Error(handleErr))
				return fmt.Errorf("request processing error: %w", handleErr)
			}
		}

		status := ctx.Response().StatusCode()
		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		if status >= fiber.StatusInternalServerError {
			log.Error(requestCtx, "Request failed", logFields...)
			return nil
		}

		log.Info(requestCtx, "Request completed", logFields...)
		return nil
	}
}
