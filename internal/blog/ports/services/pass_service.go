package services

import "context"

// PasswordService определяет операции для манипулирования паролем.
type PasswordService interface {
	// Hash возвращает самодостаточную строку хэша с солью и параметрами.
	Hash(ctx context.Context, password string) (string, error)

	// Verify сверяет пароль с хэшем. Для нераспознанного формата возвращает false.
	Verify(ctx context.Context, password, encoded string) bool
}
