package middlewarectx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/sl"
)

// Owned описывает ресурс, у которого есть один владелец.
type Owned interface {
	// Owner возвращает UID пользователя-владельца.
	Owner() string
}

// Loader загружает ресурс по его идентификатору.
type Loader func(ctx context.Context, uid string) (Owned, error)

// Source место, где лежит идентификатор ресурса в запросе.
type Source string

const (
	// SourceParams идентификатор в path-параметре.
	SourceParams Source = "params"
	// SourceBody идентификатор в поле JSON-тела.
	SourceBody Source = "body"
)

// OwnershipOptions параметризует проверку владения: имя ресурса,
// расположение идентификатора и имя его поля.
type OwnershipOptions struct {
	Resource string // Имя ресурса, оно же ключ контекста ("day")
	Source   Source // Откуда читать идентификатор
	IDField  string // Имя path-параметра или поля тела ("dayId")
}

// ResourceFromContext возвращает ресурс, загруженный проверкой владения.
func ResourceFromContext(ctx context.Context, resource string) (Owned, bool) {
	val, ok := ctx.Value(Key(resource)).(Owned)
	return val, ok
}

// ContextWithResource кладет загруженный ресурс в контекст. Используется
// в тестах обработчиков, в продовой цепочке это делает Ownership.
func ContextWithResource(ctx context.Context, resource string, val Owned) context.Context {
	return context.WithValue(ctx, Key(resource), val)
}

// Ownership возвращает HTTP middleware, который загружает ресурс по
// идентификатору из запроса и пропускает дальше только его владельца.
//
// Ровно одно чтение из хранилища, никаких мутаций: несуществующий ресурс -
// 404, чужой - 403, свой добавляется в контекст под именем ресурса.
// Ожидает уже аутентифицированного пользователя в контексте.
func Ownership(log *slog.Logger, resp *response.Renderer, load Loader, opts OwnershipOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.Ownership"

			log := log.With(
				sl.Op(op),
				slog.String("resource", opts.Resource),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			user, ok := UserFromContext(r.Context())
			if !ok {
				log.Error("user not found in context")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Fail("you are not logged in, please log in to get access"))
				return
			}

			uid, err := extractID(r, opts)
			if err != nil {
				log.Error("failed to extract resource id", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Fail(fmt.Sprintf("invalid %s id", opts.Resource)))
				return
			}

			res, err := load(r.Context(), uid)
			if err != nil {
				if errors.Is(err, errs.ErrNotFound) {
					log.Info("resource does not exist", slog.String("uid", uid))
					render.Status(r, http.StatusNotFound)
					render.JSON(w, r, response.Fail(fmt.Sprintf("'%s' does not exist", opts.Resource)))
					return
				}
				log.Error("failed to load resource", sl.Err(err))
				resp.Err(w, r, err)
				return
			}

			if res.Owner() != user.UID {
				log.Info("ownership mismatch",
					slog.String("owner", res.Owner()),
					slog.String("user", user.UID))
				resp.Err(w, r, errs.ErrForbidden)
				return
			}

			ctx := ContextWithResource(r.Context(), opts.Resource, res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractID достает идентификатор ресурса из path-параметра или JSON-тела
// и проверяет, что это UUID. При чтении из тела оно буферизуется обратно,
// чтобы обработчик мог декодировать его повторно.
func extractID(r *http.Request, opts OwnershipOptions) (string, error) {
	var uid string
	switch opts.Source {
	case SourceBody:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return "", err
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return "", err
		}
		if err := json.Unmarshal(fields[opts.IDField], &uid); err != nil {
			return "", err
		}
	default:
		uid = chi.URLParam(r, opts.IDField)
	}

	if _, err := uuid.Parse(uid); err != nil {
		return "", err
	}
	return uid, nil
}
