// Package list реализует HTTP-обработчик страницы списка пользователей.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/store"
)

// Handler отдаёт таблицу пользователей.
type Handler struct {
	log   *slog.Logger
	store *store.UserStore
}

// New создает новый Handler с переданными логгером и стором.
func New(log *slog.Logger, store *store.UserStore) *Handler {
	return &Handler{log: log, store: store}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	h.store.EnsureFetched(r.Context())
	snap := h.store.Snapshot()

	log.Info("list users", "count", len(snap.Visible))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(snap.Visible),
		"users":      snap.Visible,
		"loading":    snap.Loading,
		"error":      snap.Error,
		"query":      snap.Query,
	}))
}
