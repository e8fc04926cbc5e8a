// Package list реализует HTTP-обработчик страницы списка товаров.
//
// Первый запрос запускает начальную загрузку коллекции из бэкенда.
// Параметры сортировки и колоночных фильтров — чисто презентационные:
// они применяются к снимку и не меняют состояние стора.
package list

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Yuter777/user-products-new/internal/http/response"
	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/models"
	"github.com/Yuter777/user-products-new/internal/store"
)

// Handler отдаёт таблицу товаров с фасетами и сортировкой.
type Handler struct {
	log   *slog.Logger
	store *store.ProductStore
}

// New создает новый Handler с переданными логгером и стором.
func New(log *slog.Logger, store *store.ProductStore) *Handler {
	return &Handler{log: log, store: store}
}

// ServeHTTP godoc
// @Summary Список товаров
// @Description Возвращает видимую коллекцию товаров с фасетами брендов и категорий.
// @Tags Products
// @Produce json
// @Param sort_by query string false "Поле сортировки: price или rating"
// @Param order query string false "Порядок: asc или desc"
// @Param brand query string false "Колоночный фильтр по бренду"
// @Param category query string false "Колоночный фильтр по категории"
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	h.store.EnsureFetched(r.Context())
	snap := h.store.Snapshot()

	products := applyColumnFilters(snap.Visible, r.URL.Query().Get("brand"), r.URL.Query().Get("category"))
	applySort(products, r.URL.Query().Get("sort_by"), r.URL.Query().Get("order"))

	log.Info("list products", "count", len(products))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(products),
		"products":   products,
		"loading":    snap.Loading,
		"error":      snap.Error,
		"query":      snap.Query,
		"facets": map[string]any{
			"brands":     distinctBrands(snap.Visible),
			"categories": distinctCategories(snap.Visible),
		},
	}))
}

// applyColumnFilters оставляет товары с точным совпадением бренда и категории.
func applyColumnFilters(products []models.Product, brand, category string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if brand != "" && p.Brand != brand {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func applySort(products []models.Product, sortBy, order string) {
	var less func(a, b models.Product) bool
	switch sortBy {
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "rating":
		less = func(a, b models.Product) bool { return a.Rating < b.Rating }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		if order == "desc" {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

func distinctBrands(products []models.Product) []string {
	return distinct(products, func(p models.Product) string { return p.Brand })
}

func distinctCategories(products []models.Product) []string {
	return distinct(products, func(p models.Product) string { return p.Category })
}

// distinct возвращает уникальные значения поля в порядке первого появления.
func distinct(products []models.Product, field func(models.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0, len(products))
	for _, p := range products {
		v := field(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
