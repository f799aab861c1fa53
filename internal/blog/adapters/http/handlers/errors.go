// Package handlers содержит HTTP обработчики API блога.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"blogcore/internal/blog/adapters/http/dto"
	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/pkg/logger"
)

// Публичные тексты ошибок.
const (
	ErrorInvalidRequest     = "invalid request"
	ErrorInvalidBlogID      = "invalid blog id"
	ErrorInvalidDate        = "date must be YYYY-MM-DD"
	ErrorInvalidCredentials = "invalid username or password" // #nosec G101 - not a credential
	ErrorDuplicateField     = "already registered"
	ErrorDuplicateComment   = "blog already commented by user"
	ErrorRateLimit          = "daily limit exceeded"
	ErrorSelfComment        = "cannot comment on own blog"
	ErrorBlogNotFound       = "blog not found"
	ErrorUserNotFound       = "user not found"
	ErrorStorageUnavailable = "storage unavailable, try again later"
	ErrorInternal           = "internal server error"
	ErrorRouteNotFound      = "route not found"
	logErrorResponseFailure = "request failed"
	logRequestRejected      = "request rejected"
)

// domainStatuses сопоставляет доменные ошибки HTTP-статусам. Порядок важен: проверяется первое совпадение.
var domainStatuses = []struct {
	err     error
	status  int
	message string
}{
	{services.ErrRateLimitExceeded, fiber.StatusTooManyRequests, ErrorRateLimit},
	{services.ErrSelfCommentForbidden, fiber.StatusForbidden, ErrorSelfComment},
	{services.ErrDuplicateComment, fiber.StatusConflict, ErrorDuplicateComment},
	{services.ErrBlogNotFound, fiber.StatusNotFound, ErrorBlogNotFound},
	{entities.ErrUserNotFound, fiber.StatusNotFound, ErrorUserNotFound},
	{services.ErrStorageUnavailable, fiber.StatusServiceUnavailable, ErrorStorageUnavailable},
}

// ErrorHandler переводит ошибку обработчика в JSON-ответ со статусом.
// Используется как fiber.Config.ErrorHandler.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	status, body := classify(err)

	if status >= fiber.StatusInternalServerError {
		log.Error(requestCtx, logErrorResponseFailure, zap.Int("status", status), zap.Error(err))
	} else {
		log.Debug(requestCtx, logRequestRejected, zap.Int("status", status), zap.Error(err))
	}

	return ctx.Status(status).JSON(body)
}

func classify(err error) (int, dto.ErrorResponse) {
	var dup *services.DuplicateFieldError
	if errors.As(err, &dup) {
		return fiber.StatusConflict, dto.ErrorResponse{Error: dup.Field + " " + ErrorDuplicateField, Field: dup.Field}
	}

	if errors.Is(err, services.ErrValidation) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: err.Error()}
	}

	for _, d := range domainStatuses {
		if errors.Is(err, d.err) {
			return d.status, dto.ErrorResponse{Error: d.message}
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, dto.ErrorResponse{Error: fiberErr.Message}
	}

	return fiber.StatusInternalServerError, dto.ErrorResponse{Error: ErrorInternal}
}

func badRequest(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}
