package carrental

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/mitrofanovm/car-rental-backend/internal/cache"
	"github.com/mitrofanovm/car-rental-backend/internal/config"
	"github.com/mitrofanovm/car-rental-backend/internal/googleauth"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/jwt"
	"github.com/mitrofanovm/car-rental-backend/internal/migrations"
	authservice "github.com/mitrofanovm/car-rental-backend/internal/services/auth"
	carservice "github.com/mitrofanovm/car-rental-backend/internal/services/car"
	orderservice "github.com/mitrofanovm/car-rental-backend/internal/services/order"
	"github.com/mitrofanovm/car-rental-backend/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	tokens := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	googleClient := googleauth.NewClient(cfg.GoogleAuth)

	authService := authservice.NewAuthService(db, tokens, googleClient, logger)
	orderService := orderservice.NewOrderService(db, db, cacheRedis, logger)
	carService := carservice.NewCarService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, tokens, authService, orderService, carService)

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
		cache:  cacheRedis,
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
		if cerr := a.db.DB.Close(); cerr != nil {
			a.logger.Error("failed to close database", slog.Any("err", cerr))
		}
		return err
	}
}
