// Package services содержит доменные правила и ошибки сервисов блога.
package services

import (
	"errors"
	"fmt"
)

// Ожидаемые исходы операций. Возвращаются вызывающему для сообщений пользователю.
var (
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateField       = errors.New("field value already registered")
	ErrRateLimitExceeded    = errors.New("daily limit exceeded")
	ErrSelfCommentForbidden = errors.New("cannot comment on own blog")
	ErrDuplicateComment     = errors.New("blog already commented by user")
	ErrBlogNotFound         = errors.New("blog not found")
)

// ErrHashingFailed - не удалось получить хэш пароля.
var ErrHashingFailed = errors.New("password hashing failed")

// ErrStorageUnavailable помечает сбой хранилища: недоступность, таймаут, ошибка драйвера.
// В отличие от доменных ошибок говорит о состоянии инфраструктуры.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Поля, уникальность которых проверяется при регистрации, в порядке проверки.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

// DuplicateFieldError сообщает, какое поле уже занято.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, ErrDuplicateField)
}

// Unwrap позволяет сравнивать через errors.Is(err, ErrDuplicateField).
func (e *DuplicateFieldError) Unwrap() error {
	return ErrDuplicateField
}

// NewValidationError оборачивает ErrValidation описанием причины.
func NewValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// StorageError оборачивает ошибку драйвера в ErrStorageUnavailable, сохраняя исходную.
func StorageError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrStorageUnavailable, err)
}
