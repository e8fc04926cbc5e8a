package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/Yuter777/user-products-new/internal/backend"
	"github.com/Yuter777/user-products-new/internal/config"
	"github.com/Yuter777/user-products-new/internal/lib/jwt"
	"github.com/Yuter777/user-products-new/internal/metrics"
	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/session"
	"github.com/Yuter777/user-products-new/internal/store"
)

// App держит HTTP-сервер панели и её зависимости.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	Products *store.ProductStore
	Users    *store.UserStore
}

// New собирает приложение: клиент бэкенда, сторы, хранилище сессий,
// генератор токенов и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	client := backend.NewClient(cfg.BaseURL)

	products := store.NewProductStore(backend.NewProductAPI(client), logger)
	users := store.NewUserStore(backend.NewUserAPI(client), logger)

	products.OnChange(func(snap store.Snapshot[models.Product]) {
		metrics.SetCollectionSize("products", len(snap.Items))
	})
	users.OnChange(func(snap store.Snapshot[models.User]) {
		metrics.SetCollectionSize("users", len(snap.Items))
	})

	var sessions session.Store
	if cfg.AddressRedis != "" {
		redisSessions, err := session.InitRedis(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		sessions = redisSessions
	} else {
		logger.Warn("redis is not configured, session preferences are kept in memory")
		sessions = session.NewMemory()
	}

	maker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, products, users, sessions, maker, cfg.TokenTTL)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		Products: products,
		Users:    users,
	}, nil
}

// Run запускает сервер и останавливает его при отмене контекста.
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
		return a.server.Shutdown(timeoutCtx)
	}
}
