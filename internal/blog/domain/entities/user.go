package entities

import (
	"errors"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound = errors.New("user not found")
)

// User - учетная запись участника сообщества. Username - первичный идентификатор.
type User struct {
	Username  string
	Password  Credential
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Profile возвращает данные пользователя без учетных данных.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

// UserProfile - публичное представление пользователя.
type UserProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Registration - заявка на регистрацию.
type Registration struct {
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
}
