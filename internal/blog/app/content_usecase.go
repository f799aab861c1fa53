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
	methodCanPost       = "CanPost"
	methodCreateBlog    = "CreateBlog"
	methodGetTodayCount = "GetTodayCount"
	methodGetBlogByID   = "GetBlogByID"
	methodSearchByTag   = "SearchByTag"

	msgCreatingBlog     = "creating blog"
	msgBlogLimitReached = "daily blog limit reached"
	msgBlogCreated      = "blog created successfully"
	msgBlogNotFound     = "blog not found"
	msgInvalidBlog      = "invalid blog data"

	msgErrCountBlogs  = "failed to count today's blogs"
	msgErrCreateBlog  = "failed to create blog"
	msgErrFindBlog    = "failed to find blog"
	msgErrSearchBlogs = "failed to search blogs by tag"

	errCtxCountingBlogs = "counting today's blogs"
	errCtxCreatingBlog  = "creating blog"
	errCtxFindingBlog   = "finding blog"
	errCtxSearching     = "searching blogs"
)

// ContentUseCaseImpl реализует api.ContentUseCase.
type ContentUseCaseImpl struct {
	blogRepo repositories.BlogRepository
	calendar *services.Calendar
	limit    int
}

// NewContentUseCase создает сервис публикаций. blogsPerDay <= 0 означает лимит по умолчанию.
func NewContentUseCase(blogRepo repositories.BlogRepository, calendar *services.Calendar, blogsPerDay int) api.ContentUseCase {
	if blogsPerDay <= 0 {
		blogsPerDay = services.DefaultBlogsPerDay
	}
	if calendar == nil {
		calendar = services.NewCalendar(nil, nil)
	}
	return &ContentUseCaseImpl{
		blogRepo: blogRepo,
		calendar: calendar,
		limit:    blogsPerDay,
	}
}

// CanPost сообщает, не исчерпан ли дневной лимит записей.
func (c *ContentUseCaseImpl) CanPost(ctx context.Context, username string) (bool, error) {
	count, err := c.todayCount(ctx, methodCanPost, username)
	if err != nil {
		return false, err
	}
	return c.quota().Allows(count), nil
}

// GetTodayCount возвращает число записей пользователя за сегодня.
func (c *ContentUseCaseImpl) GetTodayCount(ctx context.Context, username string) (int, error) {
	return c.todayCount(ctx, methodGetTodayCount, username)
}

// CreateBlog публикует запись с тегами. Запись и теги сохраняются вместе или не сохраняются вовсе.
func (c *ContentUseCaseImpl) CreateBlog(ctx context.Context, username, subject, description, tags string) (int64, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateBlog), zap.String("username", username))
	log.Debug(ctx, msgCreatingBlog)

	if strings.TrimSpace(username) == "" {
		return 0, services.NewValidationError("username is required")
	}
	if strings.TrimSpace(subject) == "" {
		return 0, services.NewValidationError("subject is required")
	}

	blog := &entities.Blog{
		Username:    username,
		Subject:     strings.TrimSpace(subject),
		Description: description,
		PostDate:    c.calendar.Now(),
		Tags:        entities.NormalizeTags(tags),
	}
	if err := validateBlog(blog); err != nil {
		log.Debug(ctx, msgInvalidBlog, zap.Error(err))
		return 0, err
	}

	id, err := c.blogRepo.CreateWithTags(ctx, blog, c.quota())
	if err != nil {
		if errors.Is(err, services.ErrRateLimitExceeded) {
			log.Debug(ctx, msgBlogLimitReached)
			return 0, err
		}
		if errors.Is(err, entities.ErrUserNotFound) || errors.Is(err, services.ErrValidation) {
			log.Debug(ctx, msgErrCreateBlog, zap.Error(err))
		} else {
			log.Error(ctx, msgErrCreateBlog, zap.Error(err))
		}
		return 0, fmt.Errorf("%s: %w", errCtxCreatingBlog, err)
	}

	log.Info(ctx, msgBlogCreated, zap.Int64("blogid", id), zap.Strings("tags", blog.Tags))
	return id, nil
}

// GetBlogByID возвращает запись или nil, если ее нет.
func (c *ContentUseCaseImpl) GetBlogByID(ctx context.Context, id int64) (*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetBlogByID), zap.Int64("blogid", id))

	if id <= 0 {
		return nil, services.NewValidationError("blog id must be positive")
	}

	blog, err := c.blogRepo.FindByID(ctx, id)
	if err != nil {
		log.Error(ctx, msgErrFindBlog, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingBlog, err)
	}
	if blog == nil {
		log.Debug(ctx, msgBlogNotFound)
		return nil, nil
	}

	blog.PostDate = blog.PostDate.In(c.calendar.Location())
	return blog, nil
}

// SearchByTag ищет записи с точным совпадением тега без учета регистра.
func (c *ContentUseCaseImpl) SearchByTag(ctx context.Context, tag string) ([]*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSearchByTag), zap.String("tag", tag))

	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil, services.NewValidationError("tag is required")
	}

	blogs, err := c.blogRepo.SearchByTag(ctx, tag)
	if err != nil {
		log.Error(ctx, msgErrSearchBlogs, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSearching, err)
	}

	return blogs, nil
}

func (c *ContentUseCaseImpl) quota() services.Quota {
	return services.Quota{Limit: c.limit, Window: c.calendar.Today()}
}

func (c *ContentUseCaseImpl) todayCount(ctx context.Context, method, username string) (int, error) {
	log := logger.Log(ctx).With(zap.String("method", method), zap.String("username", username))

	if strings.TrimSpace(username) == "" {
		return 0, services.NewValidationError("username is required")
	}

	count, err := c.blogRepo.CountByAuthor(ctx, username, c.calendar.Today())
	if err != nil {
		log.Error(ctx, msgErrCountBlogs, zap.Error(err))
		return 0, fmt.Errorf("%s: %w", errCtxCountingBlogs, err)
	}

	return count, nil
}

func validateBlog(blog *entities.Blog) error {
	if err := services.CheckLength("username", blog.Username, services.MaxUsernameLength); err != nil {
		return err
	}
	if err := services.CheckLength("subject", blog.Subject, services.MaxSubjectLength); err != nil {
		return err
	}
	for _, tag := range blog.Tags {
		if err := services.CheckLength("tag", tag, services.MaxTagLength); err != nil {
			return err
		}
	}
	return nil
}
