// Package dashboard реализует HTTP-обработчик главной страницы:
// сводные счётчики по обеим коллекциям.
package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/store"
)

// Handler отдаёт сводку главной страницы.
type Handler struct {
	log      *slog.Logger
	products *store.ProductStore
	users    *store.UserStore
}

// New создает новый Handler с переданными логгером и сторами.
func New(log *slog.Logger, products *store.ProductStore, users *store.UserStore) *Handler {
	return &Handler{log: log, products: products, users: users}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shell.dashboard"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	h.products.EnsureFetched(r.Context())
	h.users.EnsureFetched(r.Context())

	productsSnap := h.products.Snapshot()
	usersSnap := h.users.Snapshot()

	log.Info("dashboard",
		slog.Int("products", len(productsSnap.Items)),
		slog.Int("users", len(usersSnap.Items)),
	)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"products_count": len(productsSnap.Items),
		"users_count":    len(usersSnap.Items),
		"products_error": productsSnap.Error,
		"users_error":    usersSnap.Error,
	}))
}
