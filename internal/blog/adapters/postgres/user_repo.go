package postgres

import (
	"context"

	"go.uber.org/zap"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/internal/blog/ports/repositories"
	pgdb "blogcore/pkg/db/postgres"
	"blogcore/pkg/logger"
)

// Имена ограничений уникальности таблицы users.
const (
	constraintUsername = "users_pkey"
	constraintEmail    = "users_email_key"
	constraintPhone    = "users_phone_key"
)

// existsQueries - запросы проверки уникальных полей. Имя поля никогда не приходит от пользователя.
var existsQueries = map[string]string{
	services.FieldUsername: `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
	services.FieldEmail:    `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
	services.FieldPhone:    `SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`,
}

var constraintFields = map[string]string{
	constraintUsername: services.FieldUsername,
	constraintEmail:    services.FieldEmail,
	constraintPhone:    services.FieldPhone,
}

// UserRepository реализует repositories.UserRepository для Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// FindByUsername находит пользователя по имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	query := `
        SELECT username, password, first_name, last_name, email, phone
        FROM users
        WHERE username = $1
    `

	var (
		user     entities.User
		password string
	)
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.Username,
		&password,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
	)
	if err != nil {
		if pgdb.IsNoRows(err) {
			log.Debug(ctx, "user not found", zap.String("username", username))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by username", zap.Error(err))
		return nil, services.StorageError("error querying user by username", err)
	}

	user.Password = entities.ParseCredential(password)
	return &user, nil
}

// ExistsBy проверяет, занято ли значение уникального поля.
func (r *UserRepository) ExistsBy(ctx context.Context, field, value string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "ExistsBy"))

	query, ok := existsQueries[field]
	if !ok {
		return false, services.NewValidationError("unknown unique field " + field)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		log.Error(ctx, "error checking field uniqueness", zap.String("field", field), zap.Error(err))
		return false, services.StorageError("error checking "+field, err)
	}

	return exists, nil
}

// Create вставляет пользователя. Пароль должен быть уже захэширован.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (username, password, first_name, last_name, email, phone)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := r.pool.Exec(ctx, query,
		user.Username,
		user.Password.Value,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
	)
	if err != nil {
		if constraint, ok := pgdb.ConstraintViolation(err, pgdb.CodeUniqueViolation); ok {
			field, known := constraintFields[constraint]
			if !known {
				field = services.FieldUsername
			}
			log.Debug(ctx, "duplicate user field on insert", zap.String("field", field))
			return &services.DuplicateFieldError{Field: field}
		}
		if verr := tooLong(err); verr != nil {
			log.Debug(ctx, "user field too long", zap.Error(err))
			return verr
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return services.StorageError("error creating user", err)
	}

	return nil
}

// UpdatePassword заменяет пароль по принципу compare-and-swap.
func (r *UserRepository) UpdatePassword(ctx context.Context, username, previous, next string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "UpdatePassword"))

	query := `
        UPDATE users
        SET password = $2
        WHERE username = $1 AND password = $3
    `

	tag, err := r.pool.Exec(ctx, query, username, next, previous)
	if err != nil {
		log.Error(ctx, "error updating password", zap.Error(err))
		return false, services.StorageError("error updating password", err)
	}

	return tag.RowsAffected() == 1, nil
}
