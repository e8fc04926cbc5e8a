// Package create реализует HTTP-обработчик создания товара.
//
// Handler принимает JSON с данными формы, валидирует их и передаёт стору.
// Ошибка валидации блокирует сетевой вызов и не попадает в состояние стора;
// ошибка бэкенда, наоборот, оседает в сторе и возвращается из его снимка.
package create

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/store"
)

// Handler управляет HTTP-запросами на создание товаров.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	store    *store.ProductStore // Стор коллекции товаров
	validate *validator.Validate // Валидатор структуры входящих данных
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
// @Summary Создать товар
// @Description Создает новый товар. Идентификатор назначается при отправке на бэкенд.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.DummyProduct true "Данные нового товара"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Бэкенд отклонил запрос"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	h.store.Create(r.Context(), req.ToProduct())

	snap := h.store.Snapshot()
	if snap.Error != "" {
		log.Error("failed to create product", slog.String("error", snap.Error))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(snap.Error))
		return
	}

	log.Info("product created", slog.Int("list_count", len(snap.Items)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(snap.Items),
		"products":   snap.Visible,
	}))
}
