// Package errs содержит сентинельные ошибки, используемые всеми слоями
// для стабильного сопоставления ошибок с HTTP-статусами.
package errs

import "errors"

var (
	// ErrNotFound запрошенная сущность не существует.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists нарушение уникального ограничения
	// (занятый email, повторный день на ту же дату).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials неверная пара email/пароль. Сообщение клиенту
	// одинаково для несуществующего пользователя и неверного пароля.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired срок действия токена истек.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid токен не прошел проверку подписи или формы,
	// либо его пользователь больше не существует.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenStale токен выпущен до последней смены пароля.
	ErrTokenStale = errors.New("token issued before password change")

	// ErrForbidden доступ запрещен: чужой ресурс или недостаточная роль.
	ErrForbidden = errors.New("forbidden")

	// ErrFutureDate дата дня в будущем относительно серверного времени.
	ErrFutureDate = errors.New("date in the future")

	// ErrBadRange начало периода позже его конца.
	ErrBadRange = errors.New("start date after end date")
)
