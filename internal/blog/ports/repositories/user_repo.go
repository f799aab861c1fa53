package repositories

import (
	"context"

	"blogcore/internal/blog/domain/entities"
)

// UserRepository определяет операции хранения пользователей.
type UserRepository interface {
	// FindByUsername возвращает entities.ErrUserNotFound, если пользователя нет.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// ExistsBy проверяет наличие значения в одном из уникальных полей (services.Field*).
	ExistsBy(ctx context.Context, field, value string) (bool, error)

	// Create возвращает *services.DuplicateFieldError при нарушении уникальности.
	Create(ctx context.Context, user *entities.User) error

	// UpdatePassword заменяет пароль, только если хранимое значение все еще равно previous.
	UpdatePassword(ctx context.Context, username, previous, next string) (bool, error)
}
