// Package services содержит логику бизнес-уровня для работы с профилем пользователя.
package services

import (
	"context"
	"fmt"

	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// Repository описывает контракт хранилища для операций с профилем.
type Repository interface {
	// UpdateUser обновляет имя и метки пользователя, nil оставляет поле как есть.
	UpdateUser(ctx context.Context, userUID string, name *string, tags []models.Tag) (*models.User, error)

	// DeactivateUser выполняет мягкое удаление пользователя.
	DeactivateUser(ctx context.Context, userUID string) error
}

// UserService реализует операции над собственным профилем пользователя.
type UserService struct {
	users Repository
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users Repository) *UserService {
	return &UserService{users: users}
}

// UpdateMe обновляет разрешенные поля профиля: имя и метки.
// Email и пароль через эту операцию не меняются никогда,
// фильтрация полей выполняется уже на уровне обработчика.
func (s *UserService) UpdateMe(ctx context.Context, userUID string, name *string, tags []models.Tag) (*models.User, error) {
	const op = "user.UpdateMe"

	user, err := s.users.UpdateUser(ctx, userUID, name, tags)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// DeleteMe мягко удаляет пользователя: учетная запись помечается
// неактивной и исчезает из всех выборок, но остается в базе.
func (s *UserService) DeleteMe(ctx context.Context, userUID string) error {
	const op = "user.DeleteMe"

	if err := s.users.DeactivateUser(ctx, userUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
