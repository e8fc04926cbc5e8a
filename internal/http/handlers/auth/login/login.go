// Package login реализует HTTP-обработчик формы входа.
//
// Учётные данные не проверяются ни по какой базе: обработчик валидирует
// форму, выдаёт подписанный токен на введённое имя и сообщает клиенту,
// куда перейти. Сессию никто не требует — это сознательное ограничение.
package login

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/jwt"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/models"
)

// TokenCookie — имя cookie с токеном доступа.
const TokenCookie = "access_token"

// Handler управляет HTTP-запросами формы входа.
type Handler struct {
	log      *slog.Logger
	maker    jwt.Maker
	tokenTTL time.Duration
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и генератором токенов.
func New(log *slog.Logger, maker jwt.Maker, tokenTTL time.Duration) *Handler {
	return &Handler{
		log:      log,
		maker:    maker,
		tokenTTL: tokenTTL,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход
// @Description Выдает токен доступа и адрес перехода после входа.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Данные формы входа"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
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

	token, err := h.maker.GenerateToken(req.Username)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not log in"))
		return
	}

	cookie := &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	}
	// без "запомнить меня" cookie живёт до закрытия браузера
	if req.Remember {
		cookie.MaxAge = int(h.tokenTTL.Seconds())
	}
	http.SetCookie(w, cookie)

	log.Info("user logged in", slog.String("username", req.Username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"redirect": "/",
	}))
}
