package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/internal/blog/ports/api"
	"blogcore/internal/blog/ports/repositories"
	"blogcore/pkg/logger"
)

const (
	methodCanComment        = "CanComment"
	methodIsAuthor          = "IsAuthor"
	methodHasCommented      = "HasCommented"
	methodAddComment        = "AddComment"
	methodGetCommentsByBlog = "GetCommentsByBlog"

	msgAddingComment     = "adding comment"
	msgCommentRejected   = "comment rejected"
	msgCommentAdded      = "comment added successfully"
	msgErrCommentStorage = "comment storage failure"
	msgErrListComments   = "failed to list comments"
	msgErrCheckAuthor    = "failed to check blog author"
	msgErrCheckCommented = "failed to check existing comment"
	msgErrCountComments  = "failed to count today's comments"

	errCtxAddingComment    = "adding comment"
	errCtxCheckingAuthor   = "checking blog author"
	errCtxCheckingComment  = "checking existing comment"
	errCtxCountingComments = "counting today's comments"
	errCtxListingComments  = "listing comments"
)

// CommentUseCaseImpl реализует api.CommentUseCase.
type CommentUseCaseImpl struct {
	commentRepo repositories.CommentRepository
	blogRepo    repositories.BlogRepository
	calendar    *services.Calendar
	limit       int
}

// NewCommentUseCase создает сервис комментариев. commentsPerDay <= 0 означает лимит по умолчанию.
func NewCommentUseCase(
	commentRepo repositories.CommentRepository,
	blogRepo repositories.BlogRepository,
	calendar *services.Calendar,
	commentsPerDay int,
) api.CommentUseCase {
	if commentsPerDay <= 0 {
		commentsPerDay = services.DefaultCommentsPerDay
	}
	if calendar == nil {
		calendar = services.NewCalendar(nil, nil)
	}
	return &CommentUseCaseImpl{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		calendar:    calendar,
		limit:       commentsPerDay,
	}
}

// CanComment сообщает, не исчерпан ли дневной лимит комментариев.
func (c *CommentUseCaseImpl) CanComment(ctx context.Context, username string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCanComment), zap.String("username", username))

	if strings.TrimSpace(username) == "" {
		return false, services.NewValidationError("username is required")
	}

	quota := c.quota()
	count, err := c.commentRepo.CountByUser(ctx, username, quota.Window)
	if err != nil {
		log.Error(ctx, msgErrCountComments, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxCountingComments, err)
	}

	return quota.Allows(count), nil
}

// IsAuthor сообщает, что username - автор блога. Для несуществующего блога false.
func (c *CommentUseCaseImpl) IsAuthor(ctx context.Context, username string, blogID int64) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodIsAuthor), zap.Int64("blogid", blogID))

	author, err := c.blogRepo.FindAuthor(ctx, blogID)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			return false, nil
		}
		log.Error(ctx, msgErrCheckAuthor, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxCheckingAuthor, err)
	}

	return author == username, nil
}

// HasCommented сообщает, что пользователь уже комментировал блог.
func (c *CommentUseCaseImpl) HasCommented(ctx context.Context, username string, blogID int64) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodHasCommented), zap.Int64("blogid", blogID))

	exists, err := c.commentRepo.Exists(ctx, username, blogID)
	if err != nil {
		log.Error(ctx, msgErrCheckCommented, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxCheckingComment, err)
	}

	return exists, nil
}

// AddComment добавляет комментарий. Проверки идут по порядку, первая неудачная определяет ошибку:
// свой блог, повторный комментарий, дневной лимит.
func (c *CommentUseCaseImpl) AddComment(
	ctx context.Context,
	username string,
	blogID int64,
	sentiment entities.Sentiment,
	text string,
) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodAddComment),
		zap.String("username", username),
		zap.Int64("blogid", blogID),
	)
	log.Debug(ctx, msgAddingComment)

	if strings.TrimSpace(username) == "" {
		return services.NewValidationError("username is required")
	}
	if err := services.CheckLength("username", username, services.MaxUsernameLength); err != nil {
		return err
	}
	if blogID <= 0 {
		return services.NewValidationError("blog id must be positive")
	}
	parsed, ok := entities.ParseSentiment(string(sentiment))
	if !ok {
		return services.NewValidationError("sentiment must be positive or negative")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return services.NewValidationError("comment text is required")
	}

	author, err := c.blogRepo.FindAuthor(ctx, blogID)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			log.Debug(ctx, msgCommentRejected, zap.Error(err))
			return err
		}
		log.Error(ctx, msgErrCheckAuthor, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingAuthor, err)
	}
	if author == username {
		log.Debug(ctx, msgCommentRejected, zap.Error(services.ErrSelfCommentForbidden))
		return services.ErrSelfCommentForbidden
	}

	commented, err := c.HasCommented(ctx, username, blogID)
	if err != nil {
		return err
	}
	if commented {
		log.Debug(ctx, msgCommentRejected, zap.Error(services.ErrDuplicateComment))
		return services.ErrDuplicateComment
	}

	allowed, err := c.CanComment(ctx, username)
	if err != nil {
		return err
	}
	if !allowed {
		log.Debug(ctx, msgCommentRejected, zap.Error(services.ErrRateLimitExceeded))
		return services.ErrRateLimitExceeded
	}

	comment := &entities.Comment{
		BlogID:      blogID,
		Username:    username,
		Sentiment:   parsed,
		Text:        text,
		CommentDate: c.calendar.Now(),
	}

	if err := c.commentRepo.Create(ctx, comment, c.quota()); err != nil {
		if isCommentRejection(err) {
			log.Debug(ctx, msgCommentRejected, zap.Error(err))
			return err
		}
		log.Error(ctx, msgErrCommentStorage, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxAddingComment, err)
	}

	log.Info(ctx, msgCommentAdded)
	return nil
}

// GetCommentsByBlog возвращает комментарии к блогу, новые первыми.
func (c *CommentUseCaseImpl) GetCommentsByBlog(ctx context.Context, blogID int64) ([]*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetCommentsByBlog), zap.Int64("blogid", blogID))

	comments, err := c.commentRepo.ListByBlog(ctx, blogID)
	if err != nil {
		log.Error(ctx, msgErrListComments, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingComments, err)
	}

	for _, comment := range comments {
		comment.CommentDate = comment.CommentDate.In(c.calendar.Location())
	}
	return comments, nil
}

func (c *CommentUseCaseImpl) quota() services.Quota {
	return services.Quota{Limit: c.limit, Window: c.calendar.Today()}
}

func isCommentRejection(err error) bool {
	return errors.Is(err, services.ErrDuplicateComment) ||
		errors.Is(err, services.ErrRateLimitExceeded) ||
		errors.Is(err, services.ErrBlogNotFound) ||
		errors.Is(err, entities.ErrUserNotFound) ||
		errors.Is(err, services.ErrValidation)
}
