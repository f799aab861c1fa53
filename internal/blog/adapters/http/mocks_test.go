package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"blogcore/internal/blog/domain/entities"
)

type MockCredentialUseCase struct {
	mock.Mock
}

func (m *MockCredentialUseCase) Register(ctx context.Context, reg *entities.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockCredentialUseCase) Login(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) GetProfile(ctx context.Context, username string) (*entities.UserProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

type MockContentUseCase struct {
	mock.Mock
}

func (m *MockContentUseCase) CanPost(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentUseCase) CreateBlog(ctx context.Context, username, subject, description, tags string) (int64, error) {
	args := m.Called(ctx, username, subject, description, tags)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentUseCase) GetTodayCount(ctx context.Context, username string) (int, error) {
	args := m.Called(ctx, username)
	return args.Int(0), args.Error(1)
}

func (m *MockContentUseCase) GetBlogByID(ctx context.Context, id int64) (*entities.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Blog), args.Error(1)
}

func (m *MockContentUseCase) SearchByTag(ctx context.Context, tag string) ([]*entities.Blog, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Blog), args.Error(1)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) CanComment(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentUseCase) IsAuthor(ctx context.Context, username string, blogID int64) (bool, error) {
	args := m.Called(ctx, username, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentUseCase) HasCommented(ctx context.Context, username string, blogID int64) (bool, error) {
	args := m.Called(ctx, username, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentUseCase) AddComment(
	ctx context.Context,
	username string,
	blogID int64,
	sentiment entities.Sentiment,
	text string,
) error {
	args := m.Called(ctx, username, blogID, sentiment, text)
	return args.Error(0)
}

func (m *MockCommentUseCase) GetCommentsByBlog(ctx context.Context, blogID int64) ([]*entities.Comment, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Comment), args.Error(1)
}

type MockAnalyticsUseCase struct {
	mock.Mock
}

func (m *MockAnalyticsUseCase) strings(args mock.Arguments) ([]string, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAnalyticsUseCase) UsersWithTagPairSameDay(ctx context.Context, tagX, tagY string) ([]string, error) {
	return m.strings(m.Called(ctx, tagX, tagY))
}

func (m *MockAnalyticsUseCase) TopAuthorsOn(ctx context.Context, date time.Time) ([]string, error) {
	return m.strings(m.Called(ctx, date))
}

func (m *MockAnalyticsUseCase) CommonFollowees(ctx context.Context, userX, userY string) ([]string, error) {
	return m.strings(m.Called(ctx, userX, userY))
}

func (m *MockAnalyticsUseCase) SilentUsers(ctx context.Context) ([]string, error) {
	return m.strings(m.Called(ctx))
}

func (m *MockAnalyticsUseCase) PraisedBlogsOf(ctx context.Context, username string) ([]entities.BlogSummary, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.BlogSummary), args.Error(1)
}

func (m *MockAnalyticsUseCase) CriticalCommenters(ctx context.Context) ([]string, error) {
	return m.strings(m.Called(ctx))
}

func (m *MockAnalyticsUseCase) UnscathedAuthors(ctx context.Context) ([]string, error) {
	return m.strings(m.Called(ctx))
}
