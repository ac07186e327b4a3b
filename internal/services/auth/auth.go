// Package services содержит логику бизнес-уровня для регистрации,
// входа и проверки сессий пользователей.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/jwt"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/password"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает активного пользователя по email, включая хэш пароля.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUID возвращает активного пользователя по UID.
	GetUserByUID(ctx context.Context, userUID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и проверку сессий.
type AuthService struct {
	users      UserRepository
	jwtMaker   jwt.Maker
	bcryptCost int
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtMaker:   jwtMaker,
		bcryptCost: bcryptCost,
	}
}

// Signup создает нового пользователя с хэшированием пароля, дефолтной ролью
// "user" и стартовым набором меток, затем выпускает токен сессии.
//
// PasswordChangedAt ставится на секунду раньше текущего момента, чтобы
// только что выпущенный токен не считался устаревшим.
func (s *AuthService) Signup(ctx context.Context, name, email, rawPassword string) (*models.User, string, error) {
	const op = "auth.Signup"

	hashed, err := password.Hash(rawPassword, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	changedAt := time.Now().UTC().Add(-time.Second)
	user := models.User{
		UID:               uuid.NewString(),
		Name:              name,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      hashed,
		Role:              models.RoleUser, // дефолтная роль при регистрации
		PasswordChangedAt: &changedAt,
		Active:            true,
		Tags:              models.DefaultTags(),
	}
	if _, err := s.users.RegisterUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return &user, token, nil
}

// Login проверяет пароль пользователя и выпускает токен сессии.
//
// Несуществующий email и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать, какая из двух частей пары неверна.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// ValidateSession проверяет токен сессии и возвращает его пользователя.
//
// Порядок проверок: подпись и срок токена, существование пользователя,
// отсутствие смены пароля после выпуска токена. Сравнение с моментом смены
// пароля идет по секундам в меньшую сторону, как и выпуск iat в токене.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	const op = "auth.ValidateSession"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.GetUserByUID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.PasswordChangedAt != nil && claims.IssuedAt != nil &&
		claims.IssuedAt.Unix() < user.PasswordChangedAt.Unix() {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrTokenStale)
	}
	return user, nil
}
