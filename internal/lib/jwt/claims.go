// Package jwt реализует выпуск и проверку JWT токенов сессии.
//
// Claims содержит только стандартные поля: subject с uid пользователя,
// время выпуска и срок действия. Проверка подписи HMAC выполняется
// библиотекой за константное время.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
)

// Claims описывает данные, хранящиеся в токене сессии.
type Claims struct {
	jwt.RegisteredClaims // Subject = uid пользователя, IssuedAt, ExpiresAt
}

// GenerateToken создает токен с subject = userUID, подписывая его секретным ключом.
//
// Время жизни токена определяется полем tokenTTL.
func (j *MakerImpl) GenerateToken(userUID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит токен, проверяет подпись, метод подписи и срок действия.
//
// Возвращает errs.ErrTokenExpired для просроченного токена и
// errs.ErrTokenInvalid для любого другого дефекта, чтобы вызывающая
// сторона могла отдать клиенту разные сообщения.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%s: %w", op, errs.ErrTokenInvalid)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrTokenInvalid)
	}
	return claims, nil
}
