// Package prefs реализует HTTP-обработчики настроек оформления:
// языка интерфейса, темы и состояния сайдбара. Настройки хранятся
// по идентификатору сессии и не влияют на данные коллекций.
package prefs

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/Yuter777/user-products-new/internal/http/middlewarectx"
	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/session"
)

// Handler управляет чтением и обновлением настроек сессии.
type Handler struct {
	log      *slog.Logger
	sessions session.Store
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и хранилищем сессий.
func New(log *slog.Logger, sessions session.Store) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
		validate: validator.New(),
	}
}

// Get отдаёт настройки текущей сессии.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, _ := r.Context().Value(middlewarectx.Prefs).(models.Preferences)
	render.JSON(w, r, response.StatusOKWithData(prefs))
}

// Update применяет частичное обновление настроек и сохраняет результат.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shell.prefs.update"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPreferences
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

	sessionID, _ := r.Context().Value(middlewarectx.SessionID).(string)
	current, _ := r.Context().Value(middlewarectx.Prefs).(models.Preferences)
	updated := req.Apply(current)

	if err := h.sessions.Set(sessionID, updated, session.TTL); err != nil {
		log.Error("failed to save preferences", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save preferences"))
		return
	}

	log.Info("preferences updated",
		slog.String("locale", updated.Locale),
		slog.String("theme", updated.Theme),
		slog.Bool("collapsed", updated.Collapsed),
	)
	render.JSON(w, r, response.StatusOKWithData(updated))
}
