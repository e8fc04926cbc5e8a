package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/store"
)

// MockRemote реализует интерфейс store.Remote[models.Product]
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockRemote) Create(ctx context.Context, item models.Product) (models.Product, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockRemote) Update(ctx context.Context, id string, item models.Product) (models.Product, error) {
	args := m.Called(ctx, id, item)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockRemote) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		query          string
		setupMock      func(*MockRemote)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное удаление с подтверждением",
			id:    "42",
			query: "confirm=true",
			setupMock: func(m *MockRemote) {
				m.On("Delete", mock.Anything, "42").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "удаление без подтверждения",
			id:             "42",
			query:          "",
			setupMock:      func(_ *MockRemote) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `deletion must be confirmed`,
		},
		{
			name:           "подтверждение с неверным значением",
			id:             "42",
			query:          "confirm=yes",
			setupMock:      func(_ *MockRemote) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `deletion must be confirmed`,
		},
		{
			name:           "отсутствует идентификатор",
			id:             "",
			query:          "confirm=true",
			setupMock:      func(_ *MockRemote) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `missing id in url`,
		},
		{
			name:  "бэкенд отклонил удаление",
			id:    "42",
			query: "confirm=true",
			setupMock: func(m *MockRemote) {
				m.On("Delete", mock.Anything, "42").Return(errors.New("not found"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := new(MockRemote)
			tt.setupMock(remote)

			productStore := store.NewProductStore(remote, logger)
			handler := New(logger, productStore)

			url := "/products/" + tt.id
			if tt.query != "" {
				url += "?" + tt.query
			}
			req := httptest.NewRequest(http.MethodDelete, url, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			remote.AssertExpectations(t)
		})
	}
}
