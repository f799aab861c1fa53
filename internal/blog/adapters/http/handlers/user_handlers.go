package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"blogcore/internal/blog/adapters/http/dto"
	"blogcore/internal/blog/ports/api"
	"blogcore/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister   = "user handler: register"
	LogHandlerLogin      = "user handler: login"
	LogHandlerGetProfile = "user handler: get profile"
	LogHandlerGetQuota   = "user handler: get quota"
)

// UserHandler содержит обработчики регистрации, входа и профиля.
type UserHandler struct {
	credentials api.CredentialUseCase
	profiles    api.ProfileUseCase
	content     api.ContentUseCase
	comments    api.CommentUseCase
}

// NewUserHandler создает обработчик пользователей.
func NewUserHandler(
	credentials api.CredentialUseCase,
	profiles api.ProfileUseCase,
	content api.ContentUseCase,
	comments api.CommentUseCase,
) *UserHandler {
	return &UserHandler{
		credentials: credentials,
		profiles:    profiles,
		content:     content,
		comments:    comments,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *UserHandler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ErrorInvalidRequest)
	}

	if err := h.credentials.Register(requestCtx, req.Registration()); err != nil {
		return fmt.Errorf("registering user: %w", err)
	}

	return sendJSON(ctx, fiber.StatusCreated, dto.RegisterResponse{Username: req.Username})
}

// Login обрабатывает запрос на вход. Неверная пара логин/пароль дает 401.
func (h *UserHandler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ErrorInvalidRequest)
	}

	ok, err := h.credentials.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, ErrorInvalidCredentials)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.LoginResponse{Username: req.Username, Authenticated: true})
}

// GetProfile возвращает профиль пользователя без пароля.
func (h *UserHandler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetProfile)

	profile, err := h.profiles.GetProfile(requestCtx, ctx.Params("username"))
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}

	return sendJSON(ctx, fiber.StatusOK, profile)
}

// GetQuota возвращает дневные счетчики пользователя.
func (h *UserHandler) GetQuota(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetQuota)

	username := ctx.Params("username")

	count, err := h.content.GetTodayCount(requestCtx, username)
	if err != nil {
		return fmt.Errorf("counting blogs: %w", err)
	}
	canPost, err := h.content.CanPost(requestCtx, username)
	if err != nil {
		return fmt.Errorf("checking blog limit: %w", err)
	}
	canComment, err := h.comments.CanComment(requestCtx, username)
	if err != nil {
		return fmt.Errorf("checking comment limit: %w", err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.QuotaResponse{
		Username:   username,
		BlogsToday: count,
		CanPost:    canPost,
		CanComment: canComment,
	})
}
