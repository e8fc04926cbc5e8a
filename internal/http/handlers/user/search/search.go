// Package search реализует HTTP-обработчик поиска по списку пользователей.
// Поиск идёт только по имени и фамилии.
package search

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/store"
)

// Handler применяет поисковый запрос к стору пользователей.
type Handler struct {
	log   *slog.Logger
	store *store.UserStore
}

// New создает новый Handler с переданными логгером и стором.
func New(log *slog.Logger, store *store.UserStore) *Handler {
	return &Handler{log: log, store: store}
}

// Request — тело запроса поиска. Пустой запрос снимает фильтр.
type Request struct {
	Query string `json:"query"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.search"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	h.store.Search(req.Query)
	snap := h.store.Snapshot()

	log.Info("search users", slog.String("query", req.Query), "count", len(snap.Visible))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(snap.Visible),
		"users":      snap.Visible,
		"query":      snap.Query,
	}))
}
