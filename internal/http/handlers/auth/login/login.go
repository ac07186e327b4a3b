// Package login реализует HTTP-обработчик входа пользователей.
//
// Выполняется декодирование JSON, проверка обязательных полей и делегирование
// входа сервису аутентификации. Ответ 401 одинаков для несуществующего email
// и неверного пароля, чтобы не раскрывать существование учетной записи.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/Tuistmessiah/active-sloth-api/internal/http/cookiejwt"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

// Request — структура входных данных для входа.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// Handler обрабатывает HTTP-запросы входа.
type Handler struct {
	log      *slog.Logger
	service  Service
	resp     *response.Renderer
	cookie   cookiejwt.Options
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, resp *response.Renderer, cookie cookiejwt.Options) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		resp:     resp,
		cookie:   cookie,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Проверяет пару email/пароль и выпускает токен сессии.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Успешный вход"
// @Failure 400 {object} response.Response "Не передан email или пароль"
// @Failure 401 {object} response.Response "Неверные учетные данные"
// @Router /user/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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
		render.JSON(w, r, response.Fail("please provide email and password"))
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	log.Info("login success", slog.String("email", user.Email))
	cookiejwt.Set(w, token, h.cookie)
	render.JSON(w, r, response.SuccessWithToken(token, map[string]any{
		"user": user.DTO(),
	}))
}
