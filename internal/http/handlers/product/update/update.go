// Package update реализует HTTP-обработчик редактирования товара.
// Форма отправляет все поля; бэкенд получает частичное обновление
// по идентификатору из URL.
package update

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/store"
)

// Handler управляет HTTP-запросами на редактирование товаров.
type Handler struct {
	log      *slog.Logger
	store    *store.ProductStore
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и стором.
func New(log *slog.Logger, store *store.ProductStore) *Handler {
	return &Handler{
		log:      log,
		store:    store,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменить товар
// @Description Обновляет товар по идентификатору. Элемент с несовпадающим id не меняется.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор товара"
// @Param request body models.DummyProduct true "Новые данные товара"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или отсутствующий id"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Бэкенд отклонил запрос"
// @Router /products/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"
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

	var req models.DummyProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	if !models.ValidRatingStep(*req.Rating) {
		log.Error("validation failed", slog.Float64("rating", *req.Rating))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("field Rating must be a multiple of 0.1"))
		return
	}

	h.store.Update(r.Context(), id, req.ToProduct())

	snap := h.store.Snapshot()
	if snap.Error != "" {
		log.Error("failed to update product", slog.String("error", snap.Error))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(snap.Error))
		return
	}

	log.Info("product updated", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(snap.Items),
		"products":   snap.Visible,
	}))
}
