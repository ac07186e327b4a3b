// Package checksession реализует HTTP-обработчик проверки текущей сессии:
// возвращает пользователя, которого резолвер сессии положил в контекст.
package checksession

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/middlewarectx"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы проверки сессии.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Проверка сессии
// @Description Возвращает пользователя текущей сессии.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response "Пользователь сессии"
// @Failure 401 {object} response.Response "Нет валидной сессии"
// @Security BearerAuth
// @Router /user/check-session [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.checksession"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Fail("you are not logged in, please log in to get access"))
		return
	}

	render.JSON(w, r, response.Success(map[string]any{
		"user": user.DTO(),
	}))
}
