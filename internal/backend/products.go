package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Yuter777/user-products-new/internal/models"
)

// ProductAPI выполняет операции коллекции /products.
type ProductAPI struct {
	client *Client
}

// NewProductAPI создаёт API товаров поверх общего клиента.
func NewProductAPI(client *Client) *ProductAPI {
	return &ProductAPI{client: client}
}

// productBody повторяет поля товара без идентификатора.
// Используется в PATCH-запросе: id задаётся только адресом записи.
type productBody struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Comments           string   `json:"comments"`
	Images             []string `json:"images"`
}

func toProductBody(p models.Product) productBody {
	return productBody{
		Title:              p.Title,
		Description:        p.Description,
		Brand:              p.Brand,
		Category:           p.Category,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Comments:           p.Comments,
		Images:             p.Images,
	}
}

// List запрашивает все товары.
func (a *ProductAPI) List(ctx context.Context) ([]models.Product, error) {
	const op = "backend.ProductAPI.List"
	req, err := a.client.newRequest(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var products []models.Product
	if err := a.client.do(req, &products); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// Create отправляет новый товар со сгенерированным на клиенте идентификатором
// и возвращает запись, которую сохранил бэкенд.
func (a *ProductAPI) Create(ctx context.Context, p models.Product) (models.Product, error) {
	const op = "backend.ProductAPI.Create"
	p.ID = newFragmentID()
	req, err := a.client.newRequest(ctx, http.MethodPost, "/products", p)
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	var created models.Product
	if err := a.client.do(req, &created); err != nil {
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// Update отправляет частичное обновление товара и возвращает запись
// в том виде, в котором её сохранил бэкенд.
func (a *ProductAPI) Update(ctx context.Context, id string, p models.Product) (models.Product, error) {
	const op = "backend.ProductAPI.Update"
	req, err := a.client.newRequest(ctx, http.MethodPatch, "/products/"+id, toProductBody(p))
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	var updated models.Product
	if err := a.client.do(req, &updated); err != nil {
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Delete удаляет товар по идентификатору.
func (a *ProductAPI) Delete(ctx context.Context, id string) error {
	const op = "backend.ProductAPI.Delete"
	req, err := a.client.newRequest(ctx, http.MethodDelete, "/products/"+id, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := a.client.do(req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
