package middlewarectx

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
)

// RequireRoles возвращает HTTP middleware, который пропускает дальше
// только пользователей с одной из перечисленных ролей. Не обращается
// к хранилищу: роль берется у пользователя из контекста.
func RequireRoles(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.RequireRoles"

			log := log.With(
				sl.Op(op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			user, ok := UserFromContext(r.Context())
			if !ok {
				log.Error("user not found in context")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Fail("you are not logged in, please log in to get access"))
				return
			}

			if !slices.Contains(roles, user.Role) {
				log.Info("role not allowed", slog.String("role", user.Role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Fail("you do not have permission to perform this action"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
