// Package profile реализует HTTP-обработчик страницы профиля.
// Имя берётся из токена доступа, если тот есть и валиден; страница
// доступна и без токена — тогда возвращается пустой профиль.
package profile

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/handlers/auth/login"
	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/jwt"
)

// Handler отдаёт данные профиля текущей сессии.
type Handler struct {
	log   *slog.Logger
	maker jwt.Maker
}

// New создает новый Handler с переданными логгером и парсером токенов.
func New(log *slog.Logger, maker jwt.Maker) *Handler {
	return &Handler{log: log, maker: maker}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username := ""
	authenticated := false

	if cookie, err := r.Cookie(login.TokenCookie); err == nil {
		if claims, err := h.maker.ParseToken(cookie.Value); err == nil {
			username = claims.Username
			authenticated = true
		}
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"username":      username,
		"authenticated": authenticated,
	}))
}
