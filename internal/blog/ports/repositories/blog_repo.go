package repositories

import (
	"context"
	"time"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
)

// BlogRepository определяет операции хранения блогов и их тегов.
type BlogRepository interface {
	// CountByAuthor считает блоги автора с post_date в окне [From, To).
	CountByAuthor(ctx context.Context, username string, window services.DayWindow) (int, error)

	// CreateWithTags атомарно проверяет квоту, вставляет блог и его теги.
	// При исчерпанной квоте возвращает services.ErrRateLimitExceeded, ничего не записав.
	CreateWithTags(ctx context.Context, blog *entities.Blog, quota services.Quota) (int64, error)

	// FindByID возвращает nil, nil, если блога нет.
	FindByID(ctx context.Context, id int64) (*entities.Blog, error)

	// FindAuthor возвращает services.ErrBlogNotFound, если блога нет.
	FindAuthor(ctx context.Context, id int64) (string, error)

	SearchByTag(ctx context.Context, tag string) ([]*entities.Blog, error)
}

// CommentRepository определяет операции хранения комментариев.
type CommentRepository interface {
	CountByUser(ctx context.Context, username string, window services.DayWindow) (int, error)

	Exists(ctx context.Context, username string, blogID int64) (bool, error)

	// Create атомарно проверяет квоту и вставляет комментарий.
	// Возвращает services.ErrRateLimitExceeded или services.ErrDuplicateComment.
	Create(ctx context.Context, comment *entities.Comment, quota services.Quota) error

	// ListByBlog возвращает комментарии, новые первыми.
	ListByBlog(ctx context.Context, blogID int64) ([]*entities.Comment, error)
}

// AnalyticsRepository выполняет аналитические запросы только на чтение.
type AnalyticsRepository interface {
	UsersWithTagPairSameDay(ctx context.Context, tagX, tagY string, loc *time.Location) ([]string, error)

	TopAuthorsOn(ctx context.Context, day services.DayWindow) ([]string, error)

	CommonFollowees(ctx context.Context, userX, userY string) ([]string, error)

	SilentUsers(ctx context.Context) ([]string, error)

	PraisedBlogsOf(ctx context.Context, username string) ([]entities.BlogSummary, error)

	CriticalCommenters(ctx context.Context) ([]string, error)

	UnscathedAuthors(ctx context.Context) ([]string, error)
}
