// Package dto содержит объекты передачи данных HTTP API блога.
package dto

import (
	"time"

	"blogcore/internal/blog/domain/entities"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

// Registration переводит запрос в доменную заявку.
func (r *RegisterRequest) Registration() *entities.Registration {
	return &entities.Registration{
		Username:        r.Username,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
	}
}

// RegisterResponse подтверждает регистрацию.
type RegisterResponse struct {
	Username string `json:"username"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse сообщает результат входа.
type LoginResponse struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}

// QuotaResponse содержит дневные счетчики пользователя.
type QuotaResponse struct {
	Username   string `json:"username"`
	BlogsToday int    `json:"blogs_today"`
	CanPost    bool   `json:"can_post"`
	CanComment bool   `json:"can_comment"`
}

// CreateBlogRequest содержит новую запись. Tags - строка через запятую.
type CreateBlogRequest struct {
	Username    string `json:"username"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

// CreateBlogResponse возвращает идентификатор созданной записи.
type CreateBlogResponse struct {
	ID int64 `json:"id"`
}

// BlogResponse - запись блога.
type BlogResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	PostDate    time.Time `json:"post_date"`
	Tags        []string  `json:"tags"`
	TagList     string    `json:"tag_list"`
}

// NewBlogResponse строит ответ из сущности.
func NewBlogResponse(b *entities.Blog) BlogResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogResponse{
		ID:          b.ID,
		Username:    b.Username,
		Subject:     b.Subject,
		Description: b.Description,
		PostDate:    b.PostDate,
		Tags:        tags,
		TagList:     b.TagList(),
	}
}

// BlogListResponse - список записей.
type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
}

// NewBlogListResponse строит список, пустой вместо nil.
func NewBlogListResponse(blogs []*entities.Blog) BlogListResponse {
	items := make([]BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, NewBlogResponse(b))
	}
	return BlogListResponse{Blogs: items}
}

// AddCommentRequest содержит комментарий. Sentiment - positive или negative.
type AddCommentRequest struct {
	Username  string `json:"username"`
	Sentiment string `json:"sentiment"`
	Text      string `json:"text"`
}

// CommentResponse - комментарий к записи.
type CommentResponse struct {
	BlogID      int64     `json:"blog_id"`
	Username    string    `json:"username"`
	Sentiment   string    `json:"sentiment"`
	Text        string    `json:"text"`
	CommentDate time.Time `json:"comment_date"`
}

// CommentListResponse - комментарии к записи.
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// NewCommentListResponse строит список, пустой вместо nil.
func NewCommentListResponse(comments []*entities.Comment) CommentListResponse {
	items := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, CommentResponse{
			BlogID:      c.BlogID,
			Username:    c.Username,
			Sentiment:   string(c.Sentiment),
			Text:        c.Text,
			CommentDate: c.CommentDate,
		})
	}
	return CommentListResponse{Comments: items}
}

// UsernamesResponse - результат отчета со списком пользователей.
type UsernamesResponse struct {
	Usernames []string `json:"usernames"`
}

// NewUsernamesResponse строит ответ, пустой вместо nil.
func NewUsernamesResponse(usernames []string) UsernamesResponse {
	if usernames == nil {
		usernames = []string{}
	}
	return UsernamesResponse{Usernames: usernames}
}

// BlogSummariesResponse - результат отчета со списком записей.
type BlogSummariesResponse struct {
	Blogs []entities.BlogSummary `json:"blogs"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
