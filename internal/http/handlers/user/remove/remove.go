// Package remove реализует HTTP-обработчик удаления пользователя.
package remove

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/store"
)

// Handler управляет HTTP-запросами на удаление пользователей.
type Handler struct {
	log   *slog.Logger
	store *store.UserStore
}

// New создает новый Handler с переданными логгером и стором.
func New(log *slog.Logger, store *store.UserStore) *Handler {
	return &Handler{log: log, store: store}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing id in url"))
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		log.Error("deletion not confirmed", slog.String("id", id))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("deletion must be confirmed"))
		return
	}

	h.store.Delete(r.Context(), id)

	snap := h.store.Snapshot()
	if snap.Error != "" {
		log.Error("failed to delete user", slog.String("error", snap.Error))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(snap.Error))
		return
	}

	log.Info("user deleted", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(snap.Items),
		"users":      snap.Visible,
	}))
}
