// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"blogcore/pkg/logger"
)

// NewRequestIDMiddleware кладет в контекст запроса идентификатор из X-Request-ID или новый UUID
// и возвращает его в одноименном заголовке ответа.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(fiber.HeaderXRequestID))
		ctx.SetContext(requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(fiber.HeaderXRequestID, id)
		}

		return ctx.Next()
	}
}
