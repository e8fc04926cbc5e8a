package update

import (
	"bytes"
	"context"
	"encoding/json"
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

// MockRemote реализует интерфейс store.Remote[models.User]
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockRemote) Create(ctx context.Context, item models.User) (models.User, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockRemote) Update(ctx context.Context, id string, item models.User) (models.User, error) {
	args := m.Called(ctx, id, item)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockRemote) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validForm() models.DummyUser {
	return models.DummyUser{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Username:  "alice",
		Password:  "secret",
		Phone:     "+998901234567",
	}
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		requestBody    any
		setupMock      func(*MockRemote)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное обновление пользователя",
			id:          "u-1",
			requestBody: validForm(),
			setupMock: func(m *MockRemote) {
				m.On("Update", mock.Anything, "u-1", validForm().ToUser("u-1")).
					Return(validForm().ToUser("u-1"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "отсутствует идентификатор",
			id:             "",
			requestBody:    validForm(),
			setupMock:      func(_ *MockRemote) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `missing id in url`,
		},
		{
			name:           "некорректный JSON",
			id:             "u-1",
			requestBody:    "{broken",
			setupMock:      func(_ *MockRemote) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "некорректный email",
			id:   "u-1",
			requestBody: func() models.DummyUser {
				f := validForm()
				f.Email = "not-an-email"
				return f
			}(),
			setupMock:      func(_ *MockRemote) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email address`,
		},
		{
			name:        "бэкенд отклонил обновление",
			id:          "u-1",
			requestBody: validForm(),
			setupMock: func(m *MockRemote) {
				m.On("Update", mock.Anything, "u-1", mock.AnythingOfType("models.User")).
					Return(models.User{}, errors.New("backend down"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `backend down`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := new(MockRemote)
			tt.setupMock(remote)

			userStore := store.NewUserStore(remote, logger)
			handler := New(logger, userStore)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.id, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

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
