package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"blogcore/internal/blog/adapters/http/dto"
	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/internal/blog/ports/api"
	"blogcore/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateBlog   = "blog handler: create blog"
	LogHandlerGetBlog      = "blog handler: get blog"
	LogHandlerSearchBlogs  = "blog handler: search blogs"
	LogHandlerAddComment   = "blog handler: add comment"
	LogHandlerListComments = "blog handler: list comments"
	LogBlogCreated         = "blog handler: blog created"
)

// BlogHandler содержит обработчики записей и комментариев.
type BlogHandler struct {
	content  api.ContentUseCase
	comments api.CommentUseCase
}

// NewBlogHandler создает обработчик записей.
func NewBlogHandler(content api.ContentUseCase, comments api.CommentUseCase) *BlogHandler {
	return &BlogHandler{content: content, comments: comments}
}

// CreateBlog публикует запись.
func (h *BlogHandler) CreateBlog(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerCreateBlog)

	var req dto.CreateBlogRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ErrorInvalidRequest)
	}

	id, err := h.content.CreateBlog(requestCtx, req.Username, req.Subject, req.Description, req.Tags)
	if err != nil {
		return fmt.Errorf("creating blog: %w", err)
	}

	log.Debug(requestCtx, LogBlogCreated, zap.Int64("blogid", id))
	return sendJSON(ctx, fiber.StatusCreated, dto.CreateBlogResponse{ID: id})
}

// GetBlog возвращает запись по идентификатору.
func (h *BlogHandler) GetBlog(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerGetBlog)

	id, err := blogIDParam(ctx)
	if err != nil {
		return err
	}

	blog, err := h.content.GetBlogByID(requestCtx, id)
	if err != nil {
		return fmt.Errorf("getting blog: %w", err)
	}
	if blog == nil {
		return services.ErrBlogNotFound
	}

	return sendJSON(ctx, fiber.StatusOK, dto.NewBlogResponse(blog))
}

// SearchBlogs ищет записи по тегу из параметра tag.
func (h *BlogHandler) SearchBlogs(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerSearchBlogs)

	blogs, err := h.content.SearchByTag(requestCtx, ctx.Query("tag"))
	if err != nil {
		return fmt.Errorf("searching blogs: %w", err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.NewBlogListResponse(blogs))
}

// AddComment добавляет комментарий к записи.
func (h *BlogHandler) AddComment(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerAddComment)

	id, err := blogIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AddCommentRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return badRequest(ErrorInvalidRequest)
	}

	sentiment := entities.Sentiment(req.Sentiment)
	if err := h.comments.AddComment(requestCtx, req.Username, id, sentiment, req.Text); err != nil {
		return fmt.Errorf("adding comment: %w", err)
	}

	return ctx.SendStatus(fiber.StatusCreated)
}

// ListComments возвращает комментарии к записи, новые первыми.
func (h *BlogHandler) ListComments(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerListComments)

	id, err := blogIDParam(ctx)
	if err != nil {
		return err
	}

	comments, err := h.comments.GetCommentsByBlog(requestCtx, id)
	if err != nil {
		return fmt.Errorf("listing comments: %w", err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.NewCommentListResponse(comments))
}
