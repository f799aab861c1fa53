package postgres

import (
	"blogcore/internal/blog/ports/repositories"
)

// RepositoryFactory создает все репозитории поверх одного пула.
type RepositoryFactory struct {
	userRepo      repositories.UserRepository
	blogRepo      repositories.BlogRepository
	commentRepo   repositories.CommentRepository
	analyticsRepo repositories.AnalyticsRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:      NewUserRepository(pool),
		blogRepo:      NewBlogRepository(pool),
		commentRepo:   NewCommentRepository(pool),
		analyticsRepo: NewAnalyticsRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// BlogRepository возвращает репозиторий блогов.
func (f *RepositoryFactory) BlogRepository() repositories.BlogRepository {
	return f.blogRepo
}

// CommentRepository возвращает репозиторий комментариев.
func (f *RepositoryFactory) CommentRepository() repositories.CommentRepository {
	return f.commentRepo
}

// AnalyticsRepository возвращает аналитический репозиторий.
func (f *RepositoryFactory) AnalyticsRepository() repositories.AnalyticsRepository {
	return f.analyticsRepo
}
