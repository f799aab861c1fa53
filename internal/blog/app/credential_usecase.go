// Package app содержит сценарии использования блога.
package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/internal/blog/ports/api"
	"blogcore/internal/blog/ports/repositories"
	svc "blogcore/internal/blog/ports/services"
	"blogcore/pkg/logger"
)

const (
	methodRegister = "Register"
	methodLogin    = "Login"

	msgStartRegistration   = "starting user registration"
	msgInvalidRegistration = "invalid registration data"
	msgFieldTaken          = "unique field already registered"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginUnknownUser    = "login attempt for unknown user"
	msgLoginRejected       = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgCredentialMigrated  = "legacy credential migrated to argon2id"
	msgMigrationRaced      = "legacy credential changed during migration"

	msgErrCheckField   = "failed to check unique field"
	msgErrHashPassword = "failed to hash password"
	msgErrCreateUser   = "failed to create user"
	msgErrFindingUser  = "error finding user by username"
	msgErrMigrateHash  = "failed to migrate legacy credential"

	errCtxValidating    = "validating registration"
	errCtxCheckingField = "checking unique field"
	errCtxHashing       = "hashing password"
	errCtxCreatingUser  = "creating user"
	errCtxFindingUser   = "finding user"
)

// CredentialUseCaseImpl реализует api.CredentialUseCase.
type CredentialUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewCredentialUseCase создает сервис регистрации и входа.
func NewCredentialUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.CredentialUseCase {
	return &CredentialUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register проверяет данные, уникальность username, email и phone (в этом порядке),
// хэширует пароль и сохраняет пользователя.
func (c *CredentialUseCaseImpl) Register(ctx context.Context, reg *entities.Registration) error {
	log := logger.Log(ctx).With(zap.String("method", methodRegister))
	log.Debug(ctx, msgStartRegistration)

	if err := validateRegistration(reg); err != nil {
		log.Debug(ctx, msgInvalidRegistration, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidating, err)
	}
	log = log.With(zap.String("username", reg.Username))

	checks := []struct {
		field string
		value string
	}{
		{services.FieldUsername, reg.Username},
		{services.FieldEmail, reg.Email},
		{services.FieldPhone, reg.Phone},
	}
	for _, check := range checks {
		taken, err := c.userRepo.ExistsBy(ctx, check.field, check.value)
		if err != nil {
			log.Error(ctx, msgErrCheckField, zap.String("field", check.field), zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxCheckingField, err)
		}
		if taken {
			log.Debug(ctx, msgFieldTaken, zap.String("field", check.field))
			return &services.DuplicateFieldError{Field: check.field}
		}
	}

	hash, err := c.passwordSvc.Hash(ctx, reg.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxHashing, err)
	}

	user := &entities.User{
		Username:  reg.Username,
		Password:  entities.HashedCredential(hash),
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
		Phone:     reg.Phone,
	}

	if err := c.userRepo.Create(ctx, user); err != nil {
		var dup *services.DuplicateFieldError
		if errors.As(err, &dup) {
			log.Debug(ctx, msgFieldTaken, zap.String("field", dup.Field))
			return dup
		}
		if errors.Is(err, services.ErrValidation) {
			log.Debug(ctx, msgInvalidRegistration, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered)
	return nil
}

// Login проверяет пароль. Неизвестный пользователь и неверный пароль дают false без ошибки.
// Успешный вход с паролем в открытом виде переводит его в Argon2id.
func (c *CredentialUseCaseImpl) Login(ctx context.Context, username, password string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	if strings.TrimSpace(username) == "" || password == "" {
		return false, nil
	}

	user, err := c.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginUnknownUser)
			return false, nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	switch user.Password.Kind {
	case entities.CredentialHashed:
		if !c.passwordSvc.Verify(ctx, password, user.Password.Value) {
			log.Debug(ctx, msgLoginRejected)
			return false, nil
		}
	case entities.CredentialLegacy:
		if subtle.ConstantTimeCompare([]byte(password), []byte(user.Password.Value)) != 1 {
			log.Debug(ctx, msgLoginRejected)
			return false, nil
		}
		c.migrateLegacy(ctx, log, user, password)
	default:
		log.Debug(ctx, msgLoginRejected)
		return false, nil
	}

	log.Info(ctx, msgUserLoggedIn)
	return true, nil
}

// migrateLegacy заменяет открытый пароль хэшем. Сбой не отменяет вход:
// пароль останется в старом формате до следующего входа.
func (c *CredentialUseCaseImpl) migrateLegacy(ctx context.Context, log *logger.Logger, user *entities.User, password string) {
	hash, err := c.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Warn(ctx, msgErrMigrateHash, zap.Error(err))
		return
	}

	swapped, err := c.userRepo.UpdatePassword(ctx, user.Username, user.Password.Value, hash)
	if err != nil {
		log.Warn(ctx, msgErrMigrateHash, zap.Error(err))
		return
	}
	if !swapped {
		log.Debug(ctx, msgMigrationRaced)
		return
	}

	log.Info(ctx, msgCredentialMigrated)
}

func validateRegistration(reg *entities.Registration) error {
	if reg == nil {
		return services.NewValidationError("registration is empty")
	}

	required := []struct {
		name  string
		value string
	}{
		{"username", reg.Username},
		{"password", reg.Password},
		{"first name", reg.FirstName},
		{"last name", reg.LastName},
		{"email", reg.Email},
		{"phone", reg.Phone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return services.NewValidationError(f.name + " is required")
		}
	}

	bounded := []struct {
		name  string
		value string
		max   int
	}{
		{"username", reg.Username, services.MaxUsernameLength},
		{"first name", reg.FirstName, services.MaxNameLength},
		{"last name", reg.LastName, services.MaxNameLength},
		{"email", reg.Email, services.MaxEmailLength},
		{"phone", reg.Phone, services.MaxPhoneLength},
	}
	for _, f := range bounded {
		if err := services.CheckLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if utf8.RuneCountInString(reg.Password) < services.MinPasswordLength {
		return services.NewValidationError(fmt.Sprintf("password must be at least %d characters", services.MinPasswordLength))
	}
	if reg.Password != reg.ConfirmPassword {
		return services.NewValidationError("passwords do not match")
	}

	return nil
}
