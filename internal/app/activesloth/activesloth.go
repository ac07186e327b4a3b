// Package activesloth собирает приложение дневника: хранилище, миграции,
// сервисы, маршруты и HTTP-сервер с корректным завершением.
package activesloth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/Tuistmessiah/active-sloth-api/internal/config"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/cookiejwt"
	"github.com/Tuistmessiah/active-sloth-api/internal/http/response"
	"github.com/Tuistmessiah/active-sloth-api/internal/lib/jwt"
	"github.com/Tuistmessiah/active-sloth-api/internal/migrations"
	authservice "github.com/Tuistmessiah/active-sloth-api/internal/services/auth"
	dayservice "github.com/Tuistmessiah/active-sloth-api/internal/services/day"
	userservice "github.com/Tuistmessiah/active-sloth-api/internal/services/user"
	"github.com/Tuistmessiah/active-sloth-api/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker, cfg.BcryptCost)
	userService := userservice.NewUserService(db)
	dayService := dayservice.NewDayService(db)

	renderer := response.NewRenderer(cfg.IsDev())
	cookieOpts := cookiejwt.Options{
		TTLDays: cfg.CookieTTLDays,
		Secure:  !cfg.IsDev(),
	}

	router := chi.NewRouter()

	RegisterRoutes(router, logger, renderer, cookieOpts, authService, userService, dayService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
