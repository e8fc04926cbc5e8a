package store

import (
	"log/slog"
	"strings"

	"github.com/Yuter777/user-products-new/internal/models"
)

// ProductStore — стор коллекции товаров.
type ProductStore = Store[models.Product]

// NewProductStore создаёт стор товаров. Поиск идёт по названию, бренду
// и категории.
func NewProductStore(remote Remote[models.Product], log *slog.Logger) *ProductStore {
	return New("products", remote, matchProduct, log)
}

func matchProduct(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}
