// Package entries реализует HTTP-обработчик полной замены записей дня.
//
// В отличие от частичного изменения дня, здесь список записей обязателен
// и целиком заменяет существующий. День к этому моменту уже загружен и
// проверен middleware владения.
package entries

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/middlewarectx"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

const dayResource = "day"

// Request — структура входных данных замены записей.
// Пустой массив допустим и означает очистку дня.
type Request struct {
	Entries []models.Entry `json:"entries" validate:"required,dive"`
}

// Service описывает интерфейс бизнес-логики замены записей дня.
type Service interface {
	ReplaceEntries(ctx context.Context, dayUID string, entries []models.Entry) (*models.Day, error)
}

// Handler обрабатывает HTTP-запросы замены записей дня.
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
// @Summary Заменить записи дня
// @Description Полностью заменяет список записей дня. Доступно только владельцу.
// @Tags Days
// @Accept  json
// @Produce  json
// @Param dayId path string true "UID дня"
// @Param request body Request true "Новый список записей"
// @Success 200 {object} response.Response "Обновленный день"
// @Failure 400 {object} response.Response "Некорректные данные"
// @Failure 401 {object} response.Response "Нет валидной сессии"
// @Failure 403 {object} response.Response "День принадлежит другому пользователю"
// @Failure 404 {object} response.Response "День не существует"
// @Security BearerAuth
// @Router /day/{dayId}/entries [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.day.entries"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	updated, err := h.service.ReplaceEntries(r.Context(), day.UID, req.Entries)
	if err != nil {
		log.Error("failed to replace entries", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	render.JSON(w, r, response.Success(updated.DTO()))
}
