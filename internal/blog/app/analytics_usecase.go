package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/internal/blog/ports/api"
	"blogcore/internal/blog/ports/repositories"
	"blogcore/pkg/logger"
)

const (
	msgRunningReport = "running analytics report"
	msgErrReport     = "analytics report failed"

	errCtxReport = "running report"
)

// AnalyticsUseCaseImpl реализует api.AnalyticsUseCase.
type AnalyticsUseCaseImpl struct {
	analyticsRepo repositories.AnalyticsRepository
	calendar      *services.Calendar
}

// NewAnalyticsUseCase создает сервис отчетов.
func NewAnalyticsUseCase(analyticsRepo repositories.AnalyticsRepository, calendar *services.Calendar) api.AnalyticsUseCase {
	if calendar == nil {
		calendar = services.NewCalendar(nil, nil)
	}
	return &AnalyticsUseCaseImpl{analyticsRepo: analyticsRepo, calendar: calendar}
}

// UsersWithTagPairSameDay возвращает авторов, опубликовавших в один день две разные записи с тегами tagX и tagY.
func (a *AnalyticsUseCaseImpl) UsersWithTagPairSameDay(ctx context.Context, tagX, tagY string) ([]string, error) {
	tagX, tagY = strings.TrimSpace(tagX), strings.TrimSpace(tagY)
	if tagX == "" || tagY == "" {
		return nil, services.NewValidationError("both tags are required")
	}

	return report(ctx, "UsersWithTagPairSameDay", func() ([]string, error) {
		return a.analyticsRepo.UsersWithTagPairSameDay(ctx, tagX, tagY, a.calendar.Location())
	})
}

// TopAuthorsOn возвращает авторов с наибольшим числом записей за день date.
func (a *AnalyticsUseCaseImpl) TopAuthorsOn(ctx context.Context, date time.Time) ([]string, error) {
	if date.IsZero() {
		return nil, services.NewValidationError("date is required")
	}

	y, m, d := date.Date()
	day := a.calendar.Date(y, m, d)

	return report(ctx, "TopAuthorsOn", func() ([]string, error) {
		return a.analyticsRepo.TopAuthorsOn(ctx, day)
	})
}

// CommonFollowees возвращает пользователей, на которых подписаны оба.
func (a *AnalyticsUseCaseImpl) CommonFollowees(ctx context.Context, userX, userY string) ([]string, error) {
	userX, userY = strings.TrimSpace(userX), strings.TrimSpace(userY)
	if userX == "" || userY == "" {
		return nil, services.NewValidationError("both usernames are required")
	}

	return report(ctx, "CommonFollowees", func() ([]string, error) {
		return a.analyticsRepo.CommonFollowees(ctx, userX, userY)
	})
}

// SilentUsers возвращает пользователей без записей.
func (a *AnalyticsUseCaseImpl) SilentUsers(ctx context.Context) ([]string, error) {
	return report(ctx, "SilentUsers", func() ([]string, error) {
		return a.analyticsRepo.SilentUsers(ctx)
	})
}

// PraisedBlogsOf возвращает записи автора, у которых есть комментарии и все они позитивные.
func (a *AnalyticsUseCaseImpl) PraisedBlogsOf(ctx context.Context, username string) ([]entities.BlogSummary, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, services.NewValidationError("username is required")
	}

	return report(ctx, "PraisedBlogsOf", func() ([]entities.BlogSummary, error) {
		return a.analyticsRepo.PraisedBlogsOf(ctx, username)
	})
}

// CriticalCommenters возвращает пользователей, оставивших только негативные комментарии.
func (a *AnalyticsUseCaseImpl) CriticalCommenters(ctx context.Context) ([]string, error) {
	return report(ctx, "CriticalCommenters", func() ([]string, error) {
		return a.analyticsRepo.CriticalCommenters(ctx)
	})
}

// UnscathedAuthors возвращает авторов, не получивших ни одного негативного комментария.
func (a *AnalyticsUseCaseImpl) UnscathedAuthors(ctx context.Context) ([]string, error) {
	return report(ctx, "UnscathedAuthors", func() ([]string, error) {
		return a.analyticsRepo.UnscathedAuthors(ctx)
	})
}

func report[T any](ctx context.Context, method string, run func() ([]T, error)) ([]T, error) {
	log := logger.Log(ctx).With(zap.String("method", method))
	log.Debug(ctx, msgRunningReport)

	rows, err := run()
	if err != nil {
		log.Error(ctx, msgErrReport, zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", errCtxReport, method, err)
	}
	if rows == nil {
		rows = []T{}
	}

	return rows, nil
}
