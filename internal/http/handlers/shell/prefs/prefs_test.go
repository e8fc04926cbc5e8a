package prefs

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuter777/user-products-new/internal/http/middlewarectx"
	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/session"
)

func withSession(r *http.Request, sessionID string, prefs models.Preferences) *http.Request {
	ctx := context.WithValue(r.Context(), middlewarectx.SessionID, sessionID)
	ctx = context.WithValue(ctx, middlewarectx.Prefs, prefs)
	return r.WithContext(ctx)
}

func TestGetHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	handler := New(logger, session.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	req = withSession(req, "sess-1", models.Preferences{Locale: "ru", Theme: "light", Collapsed: true})

	w := httptest.NewRecorder()
	handler.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locale":"ru"`)
	assert.Contains(t, w.Body.String(), `"theme":"light"`)
	assert.Contains(t, w.Body.String(), `"collapsed":true`)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "переключение языка",
			body:           `{"locale":"en"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"locale":"en"`,
		},
		{
			name:           "переключение темы",
			body:           `{"theme":"light"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"light"`,
		},
		{
			name:           "сворачивание сайдбара",
			body:           `{"collapsed":true}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"collapsed":true`,
		},
		{
			name:           "неизвестный язык",
			body:           `{"locale":"fr"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Locale must be one of: uz ru en`,
		},
		{
			name:           "неизвестная тема",
			body:           `{"theme":"sepia"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Theme must be one of: dark light`,
		},
		{
			name:           "некорректный JSON",
			body:           `{locale}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := session.NewMemory()
			handler := New(logger, sessions)

			req := httptest.NewRequest(http.MethodPut, "/preferences", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withSession(req, "sess-1", models.DefaultPreferences())

			w := httptest.NewRecorder()
			handler.Update(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestUpdateHandler_PartialUpdateKeepsRest(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sessions := session.NewMemory()
	handler := New(logger, sessions)

	req := httptest.NewRequest(http.MethodPut, "/preferences", bytes.NewBufferString(`{"theme":"light"}`))
	req.Header.Set("Content-Type", "application/json")
	req = withSession(req, "sess-1", models.Preferences{Locale: "ru", Theme: "dark", Collapsed: true})

	w := httptest.NewRecorder()
	handler.Update(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Preferences
	found, err := sessions.Get("sess-1", &saved)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Preferences{Locale: "ru", Theme: "light", Collapsed: true}, saved)
}
