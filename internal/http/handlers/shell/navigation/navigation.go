// Package navigation реализует HTTP-обработчик меню сайдбара.
// Пункты меню статичны; подписи отдаются ключами локализации,
// перевод остаётся на стороне клиента.
package navigation

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/middlewarectx"
	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/models"
)

// Item — пункт меню сайдбара.
type Item struct {
	Key   string `json:"key"`
	Label string `json:"label"` // ключ локализации
	Path  string `json:"path"`
}

// menu повторяет сайдбар исходной панели.
var menu = []Item{
	{Key: "1", Label: "dashboard", Path: "/"},
	{Key: "2", Label: "users", Path: "/users"},
	{Key: "3", Label: "products", Path: "/products"},
}

// Handler отдаёт меню и настройки оформления текущей сессии.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	prefs, _ := r.Context().Value(middlewarectx.Prefs).(models.Preferences)

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"menu":      menu,
		"collapsed": prefs.Collapsed,
		"theme":     prefs.Theme,
		"locale":    prefs.Locale,
	}))
}
