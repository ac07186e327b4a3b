// Package create реализует HTTP-обработчик создания нового дня дневника.
//
// Пустая дата означает сегодняшний день; дата нормализуется к началу суток
// UTC и не может лежать в будущем. Повторный день на ту же дату того же
// пользователя отклоняется как 400.
package create

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

// Request — структура входных данных создания дня.
type Request struct {
	Date    string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Title   string         `json:"title"`
	Entries []models.Entry `json:"entries" validate:"omitempty,dive"`
}

// Service описывает интерфейс бизнес-логики создания дня.
type Service interface {
	Create(ctx context.Context, userUID, dateStr, title string, entries []models.Entry) (*models.Day, error)
}

// Handler обрабатывает HTTP-запросы создания дня.
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
// @Summary Создать день
// @Description Создает день пользователя. На одну дату допустим только один день.
// @Tags Days
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные нового дня"
// @Success 201 {object} response.Response "Созданный день"
// @Failure 400 {object} response.Response "Некорректные данные, дата в будущем или дубликат даты"
// @Failure 401 {object} response.Response "Нет валидной сессии"
// @Security BearerAuth
// @Router /day/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.day.create"

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

	day, err := h.service.Create(r.Context(), user.UID, req.Date, req.Title, req.Entries)
	if err != nil {
		log.Error("failed to create day", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	log.Info("day created", slog.String("uid", day.UID), slog.String("date", day.DTO().Date))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.Success(day.DTO()))
}
