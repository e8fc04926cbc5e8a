// Package middlewarectx содержит HTTP middleware админ-панели.
//
// SessionMiddleware выдаёт анонимной сессии cookie с идентификатором и
// кладёт в контекст запроса идентификатор и сохранённые настройки
// оформления. Ничего не аутентифицируется: страницы доступны и без
// токена доступа.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"

	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// SessionID — ключ идентификатора сессии в контексте
	SessionID Key = "session_id"
	// Prefs — ключ настроек оформления в контексте
	Prefs Key = "prefs"
)

// SessionCookie — имя cookie с идентификатором сессии.
const SessionCookie = "session_id"

// SessionMiddleware возвращает middleware, которое назначает сессии
// идентификатор и загружает её настройки из хранилища.
func SessionMiddleware(store session.Store, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Session"
			log := log.With(
				sl.Op(op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			sessionID := ""
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				sessionID = cookie.Value
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					MaxAge:   int(session.TTL.Seconds()),
				})
			}

			prefs := models.DefaultPreferences()
			found, err := store.Get(sessionID, &prefs)
			if err != nil {
				log.Warn("failed to load session preferences", sl.Err(err))
				prefs = models.DefaultPreferences()
			}
			if !found {
				prefs = models.DefaultPreferences()
			}

			ctx := context.WithValue(r.Context(), SessionID, sessionID)
			ctx = context.WithValue(ctx, Prefs, prefs)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
