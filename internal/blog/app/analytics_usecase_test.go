package app_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogcore/internal/blog/app"
	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
)

func TestAnalyticsUseCase_TopAuthorsOnUsesCalendarDay(t *testing.T) {
	ctx := testContext(t)
	cal := testCalendar()
	repo := new(mockAnalyticsRepository)
	day := cal.Date(2025, time.October, 10)
	repo.On("TopAuthorsOn", mock.Anything, day).Return([]string{"bob", "carol"}, nil).Once()

	authors, err := app.NewAnalyticsUseCase(repo, cal).
		TopAuthorsOn(ctx, time.Date(2025, 10, 10, 22, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, authors)
	repo.AssertExpectations(t)
}

func TestAnalyticsUseCase_EmptyResultsAreNotErrors(t *testing.T) {
	ctx := testContext(t)
	cal := testCalendar()
	repo := new(mockAnalyticsRepository)
	repo.On("SilentUsers", mock.Anything).Return(nil, nil).Once()
	repo.On("CriticalCommenters", mock.Anything).Return([]string{}, nil).Once()
	repo.On("UnscathedAuthors", mock.Anything).Return(nil, nil).Once()
	repo.On("CommonFollowees", mock.Anything, "x", "y").Return(nil, nil).Once()
	repo.On("UsersWithTagPairSameDay", mock.Anything, "ai", "ml", time.UTC).Return(nil, nil).Once()
	repo.On("PraisedBlogsOf", mock.Anything, "carol").Return(nil, nil).Once()

	uc := app.NewAnalyticsUseCase(repo, cal)

	silent, err := uc.SilentUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, silent)
	assert.Empty(t, silent)

	critical, err := uc.CriticalCommenters(ctx)
	require.NoError(t, err)
	assert.Empty(t, critical)

	unscathed, err := uc.UnscathedAuthors(ctx)
	require.NoError(t, err)
	assert.NotNil(t, unscathed)

	common, err := uc.CommonFollowees(ctx, " x ", "y")
	require.NoError(t, err)
	assert.Empty(t, common)

	pair, err := uc.UsersWithTagPairSameDay(ctx, "ai", "ml")
	require.NoError(t, err)
	assert.Empty(t, pair)

	praised, err := uc.PraisedBlogsOf(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []entities.BlogSummary{}, praised)

	repo.AssertExpectations(t)
}

func TestAnalyticsUseCase_Validation(t *testing.T) {
	ctx := testContext(t)
	repo := new(mockAnalyticsRepository)
	uc := app.NewAnalyticsUseCase(repo, testCalendar())

	_, err := uc.UsersWithTagPairSameDay(ctx, "ai", " ")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = uc.CommonFollowees(ctx, "", "y")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = uc.PraisedBlogsOf(ctx, "")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = uc.TopAuthorsOn(ctx, time.Time{})
	assert.ErrorIs(t, err, services.ErrValidation)

	repo.AssertNotCalled(t, "UsersWithTagPairSameDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsUseCase_StorageFailure(t *testing.T) {
	ctx := testContext(t)
	repo := new(mockAnalyticsRepository)
	repo.On("UnscathedAuthors", mock.Anything).
		Return(nil, services.StorageError("error running UnscathedAuthors", errors.New("refused"))).Once()

	_, err := app.NewAnalyticsUseCase(repo, testCalendar()).UnscathedAuthors(ctx)

	assert.ErrorIs(t, err, services.ErrStorageUnavailable)
}
