package api

import (
	"context"

	"blogcore/internal/blog/domain/entities"
)

// CredentialUseCase определяет регистрацию и аутентификацию.
type CredentialUseCase interface {
	Register(ctx context.Context, reg *entities.Registration) error

	// Login возвращает false без ошибки для неизвестного пользователя и неверного пароля.
	Login(ctx context.Context, username, password string) (bool, error)
}

// ProfileUseCase определяет чтение профиля пользователя.
type ProfileUseCase interface {
	GetProfile(ctx context.Context, username string) (*entities.UserProfile, error)
}
