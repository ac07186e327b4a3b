// Package rangemonths реализует HTTP-обработчик выборки дней за период,
// заданный query-параметрами start и end в формате YYYY-MM.
package rangemonths

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/middlewarectx"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/month"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// Request — query-параметры выборки периода.
type Request struct {
	Start string `validate:"required,datetime=2006-01"`
	End   string `validate:"required,datetime=2006-01"`
}

// Service описывает интерфейс бизнес-логики выборки периода.
type Service interface {
	RangeMonths(ctx context.Context, userUID string, start, end time.Time) ([]*models.Day, error)
}

// Handler обрабатывает HTTP-запросы выборки периода.
type Handler struct {
	log      *slog.Logger
	service  Service
	resp     *response.Renderer
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, resp *response.Renderer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		resp:     resp,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Дни за период месяцев
// @Description Возвращает дни пользователя с первого дня месяца start по последний день месяца end.
// @Tags Days
// @Produce  json
// @Param start query string true "Начальный месяц в формате YYYY-MM"
// @Param end query string true "Конечный месяц в формате YYYY-MM"
// @Success 200 {object} response.Response "Список дней по возрастанию даты"
// @Failure 400 {object} response.Response "Некорректный формат месяца или start позже end"
// @Failure 401 {object} response.Response "Нет валидной сессии"
// @Security BearerAuth
// @Router /day/range [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.day.rangemonths"

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

	req := Request{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	// Формат уже проверен валидатором, парсинг не может упасть.
	start, err := month.Parse(req.Start)
	if err != nil {
		log.Error("failed to parse start month", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("invalid start month"))
		return
	}
	end, err := month.Parse(req.End)
	if err != nil {
		log.Error("failed to parse end month", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("invalid end month"))
		return
	}

	days, err := h.service.RangeMonths(r.Context(), user.UID, start, end)
	if err != nil {
		log.Error("failed to list days", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	render.JSON(w, r, response.Success(models.DayDTOs(days)))
}
