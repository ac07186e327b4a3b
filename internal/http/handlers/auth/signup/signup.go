// Package signup реализует HTTP-обработчик регистрации пользователей.
//
// В нём определяется структура Request для входных данных, выполняется
// декодирование JSON, валидация полей (включая совпадение пароля и его
// подтверждения), делегирование регистрации сервису аутентификации,
// установка cookie с токеном и ответ 201 без каких-либо полей пароля.
package signup

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

// Request — структура входных данных для регистрации.
type Request struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Signup(ctx context.Context, name, email, password string) (*models.User, string, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
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
// @Summary Регистрация пользователя
// @Description Создает пользователя, выпускает токен сессии и ставит cookie. Пароль в ответ не попадает.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные нового пользователя"
// @Success 201 {object} response.Response "Пользователь создан"
// @Failure 400 {object} response.Response "Некорректный JSON или ошибка валидации"
// @Router /user/signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

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
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, token, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		log.Error("signup failed", sl.Err(err))
		h.resp.Err(w, r, err)
		return
	}

	log.Info("signup success", slog.String("email", user.Email))
	cookiejwt.Set(w, token, h.cookie)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.SuccessWithToken(token, map[string]any{
		"user": user.DTO(),
	}))
}
