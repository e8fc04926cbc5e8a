// Package search реализует HTTP-обработчик поиска по списку товаров.
// Поиск локальный: бэкенд не вызывается, меняется только видимое
// представление коллекции.
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

// Handler применяет поисковый запрос к стору товаров.
type Handler struct {
	log   *slog.Logger
	store *store.ProductStore
}

// New создает новый Handler с переданными логгером и стором.
func New(log *slog.Logger, store *store.ProductStore) *Handler {
	return &Handler{log: log, store: store}
}

// Request — тело запроса поиска. Пустой запрос снимает фильтр.
type Request struct {
	Query string `json:"query"`
}

// ServeHTTP godoc
// @Summary Поиск товаров
// @Description Фильтрует видимую коллекцию по подстроке в названии, бренде или категории.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body Request true "Поисковый запрос"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Router /products/search [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.search"
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

	log.Info("search products", slog.String("query", req.Query), "count", len(snap.Visible))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(snap.Visible),
		"products":   snap.Visible,
		"query":      snap.Query,
	}))
}
