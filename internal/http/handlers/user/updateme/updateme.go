// Package updateme реализует HTTP-обработчик обновления собственного профиля.
//
// Изменяемые поля ограничены белым списком {name, tags}. Любое поле пароля
// в теле отклоняется с 400 до какого-либо обращения к хранилищу, так что
// ни одно поле пользователя при этом не меняется.
package updateme

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

// Request — структура входных данных обновления профиля.
// Поля пароля декодируются только для того, чтобы отклонить запрос.
type Request struct {
	Name            *string      `json:"name" validate:"omitempty,min=1"`
	Tags            []models.Tag `json:"tags" validate:"omitempty,dive"`
	Password        *string      `json:"password"`
	PasswordConfirm *string      `json:"passwordConfirm"`
}

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	UpdateMe(ctx context.Context, userUID string, name *string, tags []models.Tag) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы обновления профиля.
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
// @Summary Обновить свой профиль
// @Description Меняет имя и метки пользователя. Поля пароля запрещены.
// @Tags User
// @Accept  json
// @Produce  json
// @Param request body Request true "Изменяемые поля профиля"
// @Success 200 {object} response.Response "Обновленный пользователь"
// @Failure 400 {object} response.Response "Некорректный JSON или поле пароля в теле"
// @Failure 401 {object} response.Response "Нет валидной сессии"
// @Security BearerAuth
// @Router /user/updateMe [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.updateme"

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

	if req.Password != nil || req.PasswordConfirm != nil {
		log.Error("password field in updateMe request")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Fail("this route is not for password updates"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	updated, err := h.service.UpdateMe(r.Context(), user.UID, req.Name, req.Tags)
	if err != nil {
		log.Error("failed to update profile", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	render.JSON(w, r, response.Success(map[string]any{
		"user": updated.DTO(),
	}))
}
