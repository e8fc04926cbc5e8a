package middlewarectx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/session"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

func TestSessionMiddleware_AssignsCookieAndDefaults(t *testing.T) {
	store := session.NewMemory()

	var gotID string
	var gotPrefs models.Preferences
	handler := SessionMiddleware(store, testLogger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = r.Context().Value(SessionID).(string)
		gotPrefs = r.Context().Value(Prefs).(models.Preferences)
	}))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.NotEmpty(t, gotID)
	assert.Equal(t, models.DefaultPreferences(), gotPrefs)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, gotID, cookies[0].Value)
}

func TestSessionMiddleware_LoadsStoredPreferences(t *testing.T) {
	store := session.NewMemory()
	saved := models.Preferences{Locale: "en", Theme: "light", Collapsed: true}
	require.NoError(t, store.Set("sess-42", saved, time.Minute))

	var gotPrefs models.Preferences
	handler := SessionMiddleware(store, testLogger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotPrefs = r.Context().Value(Prefs).(models.Preferences)
	}))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-42"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, saved, gotPrefs)
	// существующая cookie не перевыпускается
	assert.Empty(t, w.Result().Cookies())
}
