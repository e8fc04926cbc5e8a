package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Yuter777/user-products-new/internal/models"
)

// UserAPI выполняет операции коллекции /users.
//
// В отличие от товаров, пользователь отправляется целиком: идентификатор
// выбирает вызывающая сторона, обновление идёт методом PUT, а локальной
// копией становится отправленный объект, а не тело ответа.
type UserAPI struct {
	client *Client
}

// NewUserAPI создаёт API пользователей поверх общего клиента.
func NewUserAPI(client *Client) *UserAPI {
	return &UserAPI{client: client}
}

// List запрашивает всех пользователей.
func (a *UserAPI) List(ctx context.Context) ([]models.User, error) {
	const op = "backend.UserAPI.List"
	req, err := a.client.newRequest(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var users []models.User
	if err := a.client.do(req, &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Create отправляет нового пользователя с уже присвоенным идентификатором.
// Локальной копией становится отправленный объект.
func (a *UserAPI) Create(ctx context.Context, u models.User) (models.User, error) {
	const op = "backend.UserAPI.Create"
	req, err := a.client.newRequest(ctx, http.MethodPost, "/users", u)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := a.client.do(req, nil); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Update заменяет запись пользователя целиком.
func (a *UserAPI) Update(ctx context.Context, id string, u models.User) (models.User, error) {
	const op = "backend.UserAPI.Update"
	u.ID = id
	req, err := a.client.newRequest(ctx, http.MethodPut, "/users/"+id, u)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := a.client.do(req, nil); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Delete удаляет пользователя по идентификатору.
func (a *UserAPI) Delete(ctx context.Context, id string) error {
	const op = "backend.UserAPI.Delete"
	req, err := a.client.newRequest(ctx, http.MethodDelete, "/users/"+id, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := a.client.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
