package app

import (
	"context"
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
	methodGetProfile = "GetProfile"

	msgRequestingProfile = "requesting user profile"
	msgProfileRetrieved  = "user profile successfully retrieved"

	errCtxFetchingProfile = "fetching user profile"
)

// ProfileUseCaseImpl реализует api.ProfileUseCase.
type ProfileUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewProfileUseCase создает сервис профилей.
func NewProfileUseCase(userRepo repositories.UserRepository) api.ProfileUseCase {
	return &ProfileUseCaseImpl{userRepo: userRepo}
}

// GetProfile возвращает профиль без пароля.
func (p *ProfileUseCaseImpl) GetProfile(ctx context.Context, username string) (*entities.UserProfile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProfile), zap.String("username", username))
	log.Debug(ctx, msgRequestingProfile)

	if strings.TrimSpace(username) == "" {
		return nil, services.NewValidationError("username is required")
	}

	user, err := p.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	log.Debug(ctx, msgProfileRetrieved)
	return user.Profile(), nil
}
