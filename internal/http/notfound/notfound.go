// Package notfound реализует обработчик несуществующих маршрутов.
package notfound

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/response"
)

// Handler отвечает на запросы к неизвестным путям.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Info("page not found", slog.String("path", r.URL.Path))
	w.WriteHeader(http.StatusNotFound)
	render.JSON(w, r, response.Error("page not found"))
}
