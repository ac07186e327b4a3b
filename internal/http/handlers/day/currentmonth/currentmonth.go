// Package currentmonth реализует HTTP-обработчик выборки дней
// за текущий календарный месяц UTC.
package currentmonth

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

// Service описывает интерфейс бизнес-логики выборки текущего месяца.
type Service interface {
	CurrentMonth(ctx context.Context, userUID string) ([]*models.Day, error)
}

// Handler обрабатывает HTTP-запросы выборки текущего месяца.
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
// @Summary Дни текущего месяца
// @Description Возвращает дни пользователя за текущий календарный месяц.
// @Tags Days
// @Produce  json
// @Success 200 {object} response.Response "Список дней"
// @Failure 401 {object} response.Response "Нет валидной сессии"
// @Security BearerAuth
// @Router /day/currentMonth [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.day.currentmonth"

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

	days, err := h.service.CurrentMonth(r.Context(), user.UID)
	if err != nil {
		log.Error("failed to list days", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	render.JSON(w, r, response.Success(models.DayDTOs(days)))
}
