package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/pkg/logger"
)

var fixedNow = time.Date(2025, 10, 10, 15, 4, 5, 0, time.UTC)

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

func testCalendar() *services.Calendar {
	return services.NewCalendar(time.UTC, func() time.Time { return fixedNow })
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) ExistsBy(ctx context.Context, field, value string) (bool, error) {
	args := m.Called(ctx, field, value)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, username, previous, next string) (bool, error) {
	args := m.Called(ctx, username, previous, next)
	return args.Bool(0), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, encoded string) bool {
	args := m.Called(ctx, password, encoded)
	return args.Bool(0)
}

type mockBlogRepository struct {
	mock.Mock
}

func (m *mockBlogRepository) CountByAuthor(ctx context.Context, username string, window services.DayWindow) (int, error) {
	args := m.Called(ctx, username, window)
	return args.Int(0), args.Error(1)
}

func (m *mockBlogRepository) CreateWithTags(ctx context.Context, blog *entities.Blog, quota services.Quota) (int64, error) {
	args := m.Called(ctx, blog, quota)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBlogRepository) FindByID(ctx context.Context, id int64) (*entities.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Blog), args.Error(1)
}

func (m *mockBlogRepository) FindAuthor(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockBlogRepository) SearchByTag(ctx context.Context, tag string) ([]*entities.Blog, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Blog), args.Error(1)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) CountByUser(ctx context.Context, username string, window services.DayWindow) (int, error) {
	args := m.Called(ctx, username, window)
	return args.Int(0), args.Error(1)
}

func (m *mockCommentRepository) Exists(ctx context.Context, username string, blogID int64) (bool, error) {
	args := m.Called(ctx, username, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *entities.Comment, quota services.Quota) error {
	args := m.Called(ctx, comment, quota)
	return args.Error(0)
}

func (m *mockCommentRepository) ListByBlog(ctx context.Context, blogID int64) ([]*entities.Comment, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Comment), args.Error(1)
}

type mockAnalyticsRepository struct {
	mock.Mock
}

func (m *mockAnalyticsRepository) strings(args mock.Arguments) ([]string, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockAnalyticsRepository) UsersWithTagPairSameDay(
	ctx context.Context,
	tagX, tagY string,
	loc *time.Location,
) ([]string, error) {
	return m.strings(m.Called(ctx, tagX, tagY, loc))
}

func (m *mockAnalyticsRepository) TopAuthorsOn(ctx context.Context, day services.DayWindow) ([]string, error) {
	return m.strings(m.Called(ctx, day))
}

func (m *mockAnalyticsRepository) CommonFollowees(ctx context.Context, userX, userY string) ([]string, error) {
	return m.strings(m.Called(ctx, userX, userY))
}

func (m *mockAnalyticsRepository) SilentUsers(ctx context.Context) ([]string, error) {
	return m.strings(m.Called(ctx))
}

func (m *mockAnalyticsRepository) PraisedBlogsOf(ctx context.Context, username string) ([]entities.BlogSummary, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.BlogSummary), args.Error(1)
}

func (m *mockAnalyticsRepository) CriticalCommenters(ctx context.Context) ([]string, error) {
	return m.strings(m.Called(ctx))
}

func (m *mockAnalyticsRepository) UnscathedAuthors(ctx context.Context) ([]string, error) {
	return m.strings(m.Called(ctx))
}
