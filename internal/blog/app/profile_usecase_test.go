package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogcore/internal/blog/app"
	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
)

func TestProfileUseCase_GetProfile(t *testing.T) {
	ctx := testContext(t)

	t.Run("found", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(&entities.User{
			Username:  "alice",
			Password:  entities.ParseCredential("secret-plain"),
			FirstName: "Alice",
			Email:     "alice@example.com",
		}, nil).Once()

		profile, err := app.NewProfileUseCase(userRepo).GetProfile(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, "Alice", profile.FirstName)
		assert.Equal(t, "alice@example.com", profile.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound).Once()

		_, err := app.NewProfileUseCase(userRepo).GetProfile(ctx, "ghost")

		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("blank username", func(t *testing.T) {
		_, err := app.NewProfileUseCase(new(mockUserRepository)).GetProfile(ctx, " ")
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}
