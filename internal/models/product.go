// Package models содержит доменные структуры товаров и пользователей,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "math"

// ValidRatingStep сообщает, задан ли рейтинг с шагом 0.1.
// Проверка вынесена из тегов валидатора: такого правила у него нет.
func ValidRatingStep(rating float64) bool {
	scaled := rating * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

// Product представляет товар в том виде, в котором его хранит бэкенд.
// Поле ID назначается при создании и далее не меняется.
type Product struct {
	ID                 string   `json:"id"`                 // Идентификатор записи
	Title              string   `json:"title"`              // Название товара
	Description        string   `json:"description"`        // Описание
	Brand              string   `json:"brand"`              // Бренд
	Category           string   `json:"category"`           // Категория
	Price              float64  `json:"price"`              // Цена (неотрицательная)
	DiscountPercentage float64  `json:"discountPercentage"` // Скидка в процентах, 0-100
	Rating             float64  `json:"rating"`             // Рейтинг, 0-5 с шагом 0.1
	Comments           string   `json:"comments"`           // Комментарии
	Images             []string `json:"images"`             // Ссылки на изображения
}

// EntityID возвращает идентификатор записи.
func (p Product) EntityID() string { return p.ID }

// DummyProduct используется для приёма данных формы товара из JSON-запроса,
// прежде чем конвертировать их в Product. Числовые поля объявлены указателями,
// чтобы валидатор отличал отсутствующее значение от нуля.
type DummyProduct struct {
	Title              string   `json:"title" validate:"required"`                            // Название товара
	Description        string   `json:"description" validate:"required"`                      // Описание
	Brand              string   `json:"brand" validate:"required"`                            // Бренд
	Category           string   `json:"category" validate:"required"`                         // Категория
	Price              *float64 `json:"price" validate:"required,gte=0"`                      // Цена (>=0)
	DiscountPercentage *float64 `json:"discountPercentage" validate:"required,gte=0,lte=100"` // Скидка, 0-100
	Rating             *float64 `json:"rating" validate:"required,gte=0,lte=5"`               // Рейтинг, 0-5
	Comments           string   `json:"comments" validate:"required"`                         // Комментарии
	Images             []string `json:"images" validate:"required,min=1"`                     // Ссылки на изображения
}

// ToProduct собирает Product из провалидированной формы.
// Идентификатор остаётся пустым: для новой записи его выберет клиент бэкенда,
// при обновлении он приходит из URL.
func (d DummyProduct) ToProduct() Product {
	return Product{
		Title:              d.Title,
		Description:        d.Description,
		Brand:              d.Brand,
		Category:           d.Category,
		Price:              *d.Price,
		DiscountPercentage: *d.DiscountPercentage,
		Rating:             *d.Rating,
		Comments:           d.Comments,
		Images:             d.Images,
	}
}
