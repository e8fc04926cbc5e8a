package create

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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

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
		FirstName: "Bob",
		LastName:  "Brown",
		Email:     "bob@example.com",
		Username:  "bob",
		Password:  "secret",
		Phone:     "+998901112233",
	}
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(*MockRemote)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное создание пользователя",
			requestBody: validForm(),
			setupMock: func(m *MockRemote) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					_, err := uuid.Parse(u.ID)
					return err == nil && u.Username == "bob"
				})).Return(validForm().ToUser("ignored-by-store"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"list_count":1`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "nope",
			setupMock:      func(_ *MockRemote) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "отсутствует телефон",
			requestBody: func() models.DummyUser {
				f := validForm()
				f.Phone = ""
				return f
			}(),
			setupMock:      func(_ *MockRemote) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Phone is a required field`,
		},
		{
			name:        "бэкенд отклонил запрос",
			requestBody: validForm(),
			setupMock: func(m *MockRemote) {
				m.On("Create", mock.Anything, mock.AnythingOfType("models.User")).
					Return(models.User{}, errors.New("duplicate email"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `duplicate email`,
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
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			remote.AssertExpectations(t)
		})
	}
}
