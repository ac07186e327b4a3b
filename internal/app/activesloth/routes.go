// Package activesloth предоставляет маршруты для основного приложения.
package activesloth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Tuistmessiah/active-sloth-api/docs"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/cookiejwt"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/auth/checksession"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/auth/login"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/auth/signup"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/day/create"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/day/currentmonth"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/day/entries"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/day/rangemonths"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/day/remove"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/day/update"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/health"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/user/deleteme"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/handlers/user/updateme"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/middlewarectx"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	authservice "github.com/Tuistmessiah/active-sloth-api/internal/services/auth"
	dayservice "github.com/Tuistmessiah/active-sloth-api/internal/services/day"
	userservice "github.com/Tuistmessiah/active-sloth-api/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, resp *response.Renderer, cookieOpts cookiejwt.Options, authService *authservice.AuthService, userService *userservice.UserService, dayService *dayservice.DayService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	loadDay := func(ctx context.Context, uid string) (middlewarectx.Owned, error) {
		return dayService.GetDay(ctx, uid)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/user/signup", signup.New(logger, authService, resp, cookieOpts).ServeHTTP)
		r.Post("/user/login", login.New(logger, authService, resp, cookieOpts).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionResolver(logger, resp, authService))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/user/check-session", checksession.New(logger).ServeHTTP)
			r.Patch("/user/updateMe", updateme.New(logger, userService, resp).ServeHTTP)
			r.Delete("/user/deleteMe", deleteme.New(logger, userService, resp, cookieOpts).ServeHTTP)

			r.Route("/day", func(r chi.Router) {
				r.Get("/currentMonth", currentmonth.New(logger, dayService, resp).ServeHTTP)
				r.Get("/range", rangemonths.New(logger, dayService, resp).ServeHTTP)
				r.Post("/", create.New(logger, dayService, resp).ServeHTTP)

				// Подгруппа с проверкой владения днем
				r.Route("/{dayId}", func(r chi.Router) {
					r.Use(middlewarectx.Ownership(logger, resp, loadDay, middlewarectx.OwnershipOptions{
						Resource: "day",
						Source:   middlewarectx.SourceParams,
						IDField:  "dayId",
					}))
					r.Patch("/", update.New(logger, dayService, resp).ServeHTTP)
					r.Delete("/", remove.New(logger, dayService, resp).ServeHTTP)
					r.Put("/entries", entries.New(logger, dayService, resp).ServeHTTP)
				})
			})
		})
	})

	r.Get("/ping", health.Ping())

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Fail(fmt.Sprintf("can't find %s on this server", r.URL.Path)))
	})
}
