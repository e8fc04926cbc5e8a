// Package create реализует HTTP-обработчик создания пользователя.
//
// Идентификатор выбирается здесь и отправляется на бэкенд как есть:
// в отличие от товаров, бэкенд принимает клиентский id без изменений.
package create

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/store"
)

// Handler управляет HTTP-запросами на создание пользователей.
type Handler struct {
	log      *slog.Logger
	store    *store.UserStore
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и стором.
func New(log *slog.Logger, store *store.UserStore) *Handler {
	return &Handler{
		log:      log,
		store:    store,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать пользователя
// @Description Создает нового пользователя с клиентским идентификатором.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.DummyUser true "Данные нового пользователя"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Бэкенд отклонил запрос"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.create"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUser
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

	user := req.ToUser(uuid.NewString())
	h.store.Create(r.Context(), user)

	snap := h.store.Snapshot()
	if snap.Error != "" {
		log.Error("failed to create user", slog.String("error", snap.Error))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(snap.Error))
		return
	}

	log.Info("user created", slog.String("id", user.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(snap.Items),
		"users":      snap.Visible,
	}))
}
