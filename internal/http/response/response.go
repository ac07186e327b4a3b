// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: успешных ответов,
// сообщений валидации и единой точки классификации ошибок бизнес-уровня.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
)

// Статусы ответа. Ошибки клиента (4xx) идут со статусом fail,
// ошибки сервера (5xx) - со статусом error.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Token присутствует только в ответах signup/login, Error заполняется
// полной цепочкой ошибки только в dev-окружении.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success возвращает успешный Response с переданными данными.
func Success(data any) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

// SuccessWithToken возвращает успешный Response с токеном сессии и данными.
func SuccessWithToken(token string, data any) Response {
	return Response{
		Status: StatusSuccess,
		Token:  token,
		Data:   data,
	}
}

// Fail возвращает Response для ошибки клиента с переданным сообщением.
func Fail(msg string) Response {
	return Response{
		Status:  StatusFail,
		Message: msg,
	}
}

// ValidationError формирует Response со статусом fail на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "eqfield":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must match %s", err.Field(), err.Param()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "datetime":
			switch err.Param() {
			case "2006-01-02":
				errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only date in format 2006-01-02", err.Field()))
			case "2006-01":
				errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only month in format 2006-01", err.Field()))
			default:
				errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
			}
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Fail(strings.Join(errsMsgs, ", "))
}

// Renderer - единая граница классификации ошибок бизнес-уровня.
// Сентинели errs переводятся в коды и канонические клиентские сообщения,
// всё нераспознанное отдается как 500 с фиксированным текстом.
// В dev-окружении к телу добавляется полная цепочка ошибки.
type Renderer struct {
	dev bool
}

// NewRenderer создает Renderer. dev=true включает подробные тела ошибок.
func NewRenderer(dev bool) *Renderer {
	return &Renderer{dev: dev}
}

// classify возвращает HTTP-код и каноническое сообщение для ошибки.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusBadRequest, "duplicate field value, please use another value"
	case errors.Is(err, errs.ErrFutureDate):
		return http.StatusBadRequest, "date cannot be in the future"
	case errors.Is(err, errs.ErrBadRange):
		return http.StatusBadRequest, "start date must be before end date"
	case errors.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized, "incorrect email or password"
	case errors.Is(err, errs.ErrTokenExpired):
		return http.StatusUnauthorized, "your token has expired, please log in again"
	case errors.Is(err, errs.ErrTokenStale):
		return http.StatusUnauthorized, "token not valid anymore, please log in again"
	case errors.Is(err, errs.ErrTokenInvalid):
		return http.StatusUnauthorized, "token not valid"
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "you do not have permission to perform this action"
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "no document found with that id"
	default:
		return http.StatusInternalServerError, "something went very wrong"
	}
}

// Err классифицирует ошибку и пишет JSON-ответ.
func (rn *Renderer) Err(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := classify(err)
	resp := Response{
		Status:  StatusFail,
		Message: msg,
	}
	if code >= http.StatusInternalServerError {
		resp.Status = StatusError
	}
	if rn.dev {
		resp.Error = err.Error()
	}
	render.Status(r, code)
	render.JSON(w, r, resp)
}

// Dev сообщает, включен ли подробный вывод ошибок.
func (rn *Renderer) Dev() bool {
	return rn.dev
}
