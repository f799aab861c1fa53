// Package services содержит реализации служебных портов блога.
package services

import (
	"blogcore/internal/blog/domain/services"
	svc "blogcore/internal/blog/ports/services"
)

// ServiceFactory создает служебные сервисы.
type ServiceFactory struct {
	passwordService svc.PasswordService
}

// NewServiceFactory создает фабрику с заданными параметрами Argon2id.
func NewServiceFactory(params services.Argon2Params) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewArgon2(params),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}
