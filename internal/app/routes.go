// Package app собирает админ-панель: сторы, хранилище сессий,
// маршруты и HTTP-сервер.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	productcreate "github.com/Yuter777/user-products-new/internal/http/handlers/product/create"
	productlist "github.com/Yuter777/user-products-new/internal/http/handlers/product/list"
	productremove "github.com/Yuter777/user-products-new/internal/http/handlers/product/remove"
	productsearch "github.com/Yuter777/user-products-new/internal/http/handlers/product/search"
	productupdate "github.com/Yuter777/user-products-new/internal/http/handlers/product/update"
	usercreate "github.com/Yuter777/user-products-new/internal/http/handlers/user/create"
	userlist "github.com/Yuter777/user-products-new/internal/http/handlers/user/list"
	userremove "github.com/Yuter777/user-products-new/internal/http/handlers/user/remove"
	usersearch "github.com/Yuter777/user-products-new/internal/http/handlers/user/search"
	userupdate "github.com/Yuter777/user-products-new/internal/http/handlers/user/update"

	"github.com/Yuter777/user-products-new/internal/http/handlers/auth/login"
	"github.com/Yuter777/user-products-new/internal/http/handlers/auth/register"
	"github.com/Yuter777/user-products-new/internal/http/handlers/shell/dashboard"
	"github.com/Yuter777/user-products-new/internal/http/handlers/shell/logout"
	"github.com/Yuter777/user-products-new/internal/http/handlers/shell/navigation"
	"github.com/Yuter777/user-products-new/internal/http/handlers/shell/prefs"
	"github.com/Yuter777/user-products-new/internal/http/handlers/shell/profile"
	"github.com/Yuter777/user-products-new/internal/http/middlewarectx"
	"github.com/Yuter777/user-products-new/internal/http/notfound"
	"github.com/Yuter777/user-products-new/internal/lib/jwt"
	"github.com/Yuter777/user-products-new/internal/session"
	"github.com/Yuter777/user-products-new/internal/store"

	"time"
)

// RegisterRoutes регистрирует все маршруты панели. Таблица статична:
// /login и /signup живут вне оболочки, остальные известные пути — внутри,
// все прочие попадают в NotFound.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	products *store.ProductStore,
	users *store.UserStore,
	sessions session.Store,
	maker jwt.Maker,
	tokenTTL time.Duration,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.NotFound(notfound.New(logger).ServeHTTP)

	// Открытые формы вне оболочки
	r.Post("/login", login.New(logger, maker, tokenTTL).ServeHTTP)
	r.Post("/signup", register.New(logger).ServeHTTP)

	// Страницы внутри оболочки. Токен доступа нигде не проверяется:
	// соответствующего middleware в этой группе нет.
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.SessionMiddleware(sessions, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Get("/", dashboard.New(logger, products, users).ServeHTTP)

		r.Get("/products", productlist.New(logger, products).ServeHTTP)
		r.Post("/products", productcreate.New(logger, products).ServeHTTP)
		r.Post("/products/search", productsearch.New(logger, products).ServeHTTP)
		r.Patch("/products/{id}", productupdate.New(logger, products).ServeHTTP)
		r.Delete("/products/{id}", productremove.New(logger, products).ServeHTTP)

		r.Get("/users", userlist.New(logger, users).ServeHTTP)
		r.Post("/users", usercreate.New(logger, users).ServeHTTP)
		r.Post("/users/search", usersearch.New(logger, users).ServeHTTP)
		r.Put("/users/{id}", userupdate.New(logger, users).ServeHTTP)
		r.Delete("/users/{id}", userremove.New(logger, users).ServeHTTP)

		r.Get("/navigation", navigation.New(logger).ServeHTTP)
		r.Get("/profile", profile.New(logger, maker).ServeHTTP)

		prefsHandler := prefs.New(logger, sessions)
		r.Get("/preferences", prefsHandler.Get)
		r.Put("/preferences", prefsHandler.Update)

		r.Post("/logout", logout.New(logger, sessions).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
