// Package logout реализует HTTP-обработчик выхода: удаляет сохранённый
// токен доступа, сбрасывает настройки сессии и направляет клиента на
// страницу входа.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/handlers/auth/login"
	"github.com/Yuter777/user-products-new/internal/http/middlewarectx"
	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/session"
)

// Handler управляет HTTP-запросами выхода.
type Handler struct {
	log      *slog.Logger
	sessions session.Store
}

// New создает новый Handler с переданными логгером и хранилищем сессий.
func New(log *slog.Logger, sessions session.Store) *Handler {
	return &Handler{log: log, sessions: sessions}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shell.logout"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     login.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if sessionID, ok := r.Context().Value(middlewarectx.SessionID).(string); ok && sessionID != "" {
		if err := h.sessions.Invalidate(sessionID); err != nil {
			log.Warn("failed to invalidate session", sl.Err(err))
		}
	}

	log.Info("user logged out")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"redirect": "/login",
	}))
}
