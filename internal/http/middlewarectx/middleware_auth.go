// Package middlewarectx содержит HTTP middleware цепочки авторизации:
// резолвер сессии по JWT, проверку владения ресурсом и проверку роли.
//
// Резолвер сессии ищет токен в заголовке Authorization, затем в cookie "jwt",
// проверяет его, загружает пользователя и кладет его в контекст запроса
// для последующих обработчиков. Токены, выпущенные до смены пароля,
// отклоняются. Любая неудача - HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/cookiejwt"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// userKey ключ аутентифицированного пользователя в контексте.
const userKey Key = "user"

// SessionService описывает интерфейс проверки токена сессии.
type SessionService interface {
	// ValidateSession проверяет токен и возвращает его пользователя.
	ValidateSession(ctx context.Context, token string) (*models.User, error)
}

// UserFromContext возвращает аутентифицированного пользователя запроса.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// ContextWithUser кладет пользователя в контекст. Используется в тестах
// обработчиков, в продовой цепочке это делает SessionResolver.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// SessionResolver возвращает HTTP middleware, который проверяет токен сессии.
//
// Токен ищется сначала в заголовке Authorization (Bearer), затем в cookie.
// Если токен валиден и его пользователь существует, пользователь добавляется
// в контекст запроса, иначе возвращается 401 Unauthorized.
func SessionResolver(log *slog.Logger, resp *response.Renderer, sessions SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.SessionResolver"

			log := log.With(
				sl.Op(op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			var token string
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			} else {
				token = cookiejwt.FromRequest(r)
			}
			if token == "" {
				log.Error("missing session token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Fail("you are not logged in, please log in to get access"))
				return
			}

			user, err := sessions.ValidateSession(r.Context(), token)
			if err != nil {
				log.Error("session validation failed", sl.Err(err))
				resp.Err(w, r, err)
				return
			}

			ctx := ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
