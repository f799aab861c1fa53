package api

import (
	"context"
	"time"

	"blogcore/internal/blog/domain/entities"
)

// ContentUseCase определяет публикацию и чтение блогов.
type ContentUseCase interface {
	CanPost(ctx context.Context, username string) (bool, error)

	CreateBlog(ctx context.Context, username, subject, description, tags string) (int64, error)

	GetTodayCount(ctx context.Context, username string) (int, error)

	GetBlogByID(ctx context.Context, id int64) (*entities.Blog, error)

	SearchByTag(ctx context.Context, tag string) ([]*entities.Blog, error)
}

// CommentUseCase определяет комментирование блогов.
type CommentUseCase interface {
	CanComment(ctx context.Context, username string) (bool, error)

	IsAuthor(ctx context.Context, username string, blogID int64) (bool, error)

	HasCommented(ctx context.Context, username string, blogID int64) (bool, error)

	AddComment(ctx context.Context, username string, blogID int64, sentiment entities.Sentiment, text string) error

	GetCommentsByBlog(ctx context.Context, blogID int64) ([]*entities.Comment, error)
}

// AnalyticsUseCase определяет отчетные запросы.
type AnalyticsUseCase interface {
	UsersWithTagPairSameDay(ctx context.Context, tagX, tagY string) ([]string, error)

	TopAuthorsOn(ctx context.Context, date time.Time) ([]string, error)

	CommonFollowees(ctx context.Context, userX, userY string) ([]string, error)

	SilentUsers(ctx context.Context) ([]string, error)

	PraisedBlogsOf(ctx context.Context, username string) ([]entities.BlogSummary, error)

	CriticalCommenters(ctx context.Context) ([]string, error)

	UnscathedAuthors(ctx context.Context) ([]string, error)
}
