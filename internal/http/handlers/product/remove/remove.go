// Package remove реализует HTTP-обработчик удаления товара.
// Удаление необратимо, поэтому требует явного подтверждения
// параметром confirm=true — аналог модального окна подтверждения.
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

// Handler управляет HTTP-запросами на удаление товаров.
type Handler struct {
	log   *slog.Logger
	store *store.ProductStore
}

// New создает новый Handler с переданными логгером и стором.
func New(log *slog.Logger, store *store.ProductStore) *Handler {
	return &Handler{log: log, store: store}
}

// ServeHTTP godoc
// @Summary Удалить товар
// @Description Удаляет товар по идентификатору. Требует подтверждения confirm=true.
// @Tags Products
// @Produce json
// @Param id path string true "Идентификатор товара"
// @Param confirm query string true "Подтверждение удаления"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Удаление не подтверждено"
// @Failure 502 {object} response.ErrorResponse "Бэкенд отклонил запрос"
// @Router /products/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.remove"
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
		log.Error("failed to delete product", slog.String("error", snap.Error))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(snap.Error))
		return
	}

	log.Info("product deleted", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(snap.Items),
		"products":   snap.Visible,
	}))
}
