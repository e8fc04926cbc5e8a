package store

import (
	"log/slog"
	"strings"

	"github.com/Yuter777/user-products-new/internal/models"
)

// UserStore — стор коллекции пользователей.
type UserStore = Store[models.User]

// NewUserStore создаёт стор пользователей. Поиск идёт только по имени
// и фамилии: username и email в поиске не участвуют.
func NewUserStore(remote Remote[models.User], log *slog.Logger) *UserStore {
	return New("users", remote, matchUser, log)
}

func matchUser(u models.User, query string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), query) ||
		strings.Contains(strings.ToLower(u.LastName), query)
}
