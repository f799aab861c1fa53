package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"blogcore/internal/blog/adapters/http/dto"
	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/ports/api"
)

// AnalyticsHandler содержит обработчики отчетов.
type AnalyticsHandler struct {
	analytics api.AnalyticsUseCase
}

// NewAnalyticsHandler создает обработчик отчетов.
func NewAnalyticsHandler(analytics api.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// TagPair - пользователи с двумя записями за один день, помеченными x и y.
func (h *AnalyticsHandler) TagPair(ctx fiber.Ctx) error {
	usernames, err := h.analytics.UsersWithTagPairSameDay(ctx.Context(), ctx.Query("x"), ctx.Query("y"))
	return h.sendUsernames(ctx, "tag pair report", usernames, err)
}

// TopAuthors - авторы с наибольшим числом записей за date.
func (h *AnalyticsHandler) TopAuthors(ctx fiber.Ctx) error {
	date, err := time.Parse(time.DateOnly, ctx.Query("date"))
	if err != nil {
		return badRequest(ErrorInvalidDate)
	}

	usernames, err := h.analytics.TopAuthorsOn(ctx.Context(), date)
	return h.sendUsernames(ctx, "top authors report", usernames, err)
}

// CommonFollowees - пользователи, на которых подписаны и x, и y.
func (h *AnalyticsHandler) CommonFollowees(ctx fiber.Ctx) error {
	usernames, err := h.analytics.CommonFollowees(ctx.Context(), ctx.Query("x"), ctx.Query("y"))
	return h.sendUsernames(ctx, "common followees report", usernames, err)
}

// SilentUsers - пользователи без записей.
func (h *AnalyticsHandler) SilentUsers(ctx fiber.Ctx) error {
	usernames, err := h.analytics.SilentUsers(ctx.Context())
	return h.sendUsernames(ctx, "silent users report", usernames, err)
}

// PraisedBlogs - записи пользователя, у которых все комментарии положительные.
func (h *AnalyticsHandler) PraisedBlogs(ctx fiber.Ctx) error {
	blogs, err := h.analytics.PraisedBlogsOf(ctx.Context(), ctx.Query("username"))
	if err != nil {
		return fmt.Errorf("praised blogs report: %w", err)
	}
	if blogs == nil {
		blogs = []entities.BlogSummary{}
	}
	return sendJSON(ctx, fiber.StatusOK, dto.BlogSummariesResponse{Blogs: blogs})
}

// CriticalCommenters - пользователи, все комментарии которых отрицательные.
func (h *AnalyticsHandler) CriticalCommenters(ctx fiber.Ctx) error {
	usernames, err := h.analytics.CriticalCommenters(ctx.Context())
	return h.sendUsernames(ctx, "critical commenters report", usernames, err)
}

// UnscathedAuthors - авторы, на записи которых нет отрицательных комментариев.
func (h *AnalyticsHandler) UnscathedAuthors(ctx fiber.Ctx) error {
	usernames, err := h.analytics.UnscathedAuthors(ctx.Context())
	return h.sendUsernames(ctx, "unscathed authors report", usernames, err)
}

func (h *AnalyticsHandler) sendUsernames(ctx fiber.Ctx, report string, usernames []string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", report, err)
	}
	return sendJSON(ctx, fiber.StatusOK, dto.NewUsernamesResponse(usernames))
}
