// Package deleteme реализует HTTP-обработчик мягкого удаления своей
// учетной записи: пользователь помечается неактивным, cookie сессии
// очищается, ответ - 204 без тела.
package deleteme

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/cookiejwt"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/middlewarectx"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики удаления учетной записи.
type Service interface {
	DeleteMe(ctx context.Context, userUID string) error
}

// Handler обрабатывает HTTP-запросы удаления учетной записи.
type Handler struct {
	log     *slog.Logger
	service Service
	resp    *response.Renderer
	cookie  cookiejwt.Options
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, resp *response.Renderer, cookie cookiejwt.Options) *Handler {
	return &Handler{
		log:     log,
		service: service,
		resp:    resp,
		cookie:  cookie,
	}
}

// ServeHTTP godoc
// @Summary Удалить свою учетную запись
// @Description Мягкое удаление: учетная запись помечается неактивной.
// @Tags User
// @Success 204 "Учетная запись деактивирована"
// @Failure 401 {object} response.Response "Нет валидной сессии"
// @Security BearerAuth
// @Router /user/deleteMe [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.deleteme"

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

	if err := h.service.DeleteMe(r.Context(), user.UID); err != nil {
		log.Error("failed to deactivate user", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	log.Info("user deactivated", slog.String("uid", user.UID))
	cookiejwt.Clear(w, h.cookie)
	w.WriteHeader(http.StatusNoContent)
}
