// Package remove реализует HTTP-обработчик удаления дня дневника.
// День к этому моменту уже загружен и проверен middleware владения.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/middlewarectx"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

const dayResource = "day"

// Service описывает интерфейс бизнес-логики удаления дня.
type Service interface {
	Delete(ctx context.Context, dayUID string) error
}

// Handler обрабатывает HTTP-запросы удаления дня.
type Handler struct {
	log     *slog.Logger
	service Service
	resp    *response.Renderer
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, resp *response.Renderer) *Handler {
	return &Handler{
		log:     log,
		service: service,
		resp:    resp,
	}
}

// ServeHTTP godoc
// @Summary Удалить день
// @Description Безвозвратно удаляет день вместе с записями. Доступно только владельцу.
// @Tags Days
// @Param dayId path string true "UID дня"
// @Success 204 "День удален"
// @Failure 401 {object} response.Response "Нет валидной сессии"
// @Failure 403 {object} response.Response "День принадлежит другому пользователю"
// @Failure 404 {object} response.Response "День не существует"
// @Security BearerAuth
// @Router /day/{dayId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.day.remove"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, ok := middlewarectx.ResourceFromContext(r.Context(), dayResource)
	if !ok {
		log.Error("day not found in context")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Fail("'day' does not exist"))
		return
	}
	day := res.(*models.Day)

	if err := h.service.Delete(r.Context(), day.UID); err != nil {
		log.Error("failed to delete day", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	log.Info("day deleted", slog.String("uid", day.UID))
	w.WriteHeader(http.StatusNoContent)
}
