package services

import (
	"fmt"
	"unicode/utf8"
)

// Максимальная длина полей в символах. Совпадает с ограничениями колонок схемы.
const (
	MaxUsernameLength = 64
	MaxNameLength     = 100
	MaxEmailLength    = 255
	MaxPhoneLength    = 32
	MaxSubjectLength  = 255
	MaxTagLength      = 64
)

// CheckLength возвращает ошибку валидации, если value длиннее max символов.
func CheckLength(name, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return NewValidationError(fmt.Sprintf("%s must be at most %d characters", name, max))
	}
	return nil
}
