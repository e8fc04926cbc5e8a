package models

// User представляет запись пользователя админ-панели.
// Все поля строковые, идентификатор выбирается клиентом при создании
// и принимается бэкендом как есть.
type User struct {
	ID        string `json:"id"`        // Идентификатор записи
	FirstName string `json:"firstName"` // Имя
	LastName  string `json:"lastName"`  // Фамилия
	Email     string `json:"email"`     // Электронная почта
	Username  string `json:"username"`  // Имя пользователя
	Password  string `json:"password"`  // Пароль (бэкенд хранит как есть)
	Phone     string `json:"phone"`     // Телефон
}

// EntityID возвращает идентификатор записи.
func (u User) EntityID() string { return u.ID }

// DummyUser используется для приёма данных формы пользователя из JSON-запроса
// до их валидации и преобразования в User.
type DummyUser struct {
	FirstName string `json:"firstName" validate:"required"`   // Имя
	LastName  string `json:"lastName" validate:"required"`    // Фамилия
	Email     string `json:"email" validate:"required,email"` // Электронная почта
	Username  string `json:"username" validate:"required"`    // Имя пользователя
	Password  string `json:"password" validate:"required"`    // Пароль
	Phone     string `json:"phone" validate:"required"`       // Телефон
}

// ToUser собирает User из провалидированной формы с заданным идентификатором.
func (d DummyUser) ToUser(id string) User {
	return User{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Username:  d.Username,
		Password:  d.Password,
		Phone:     d.Phone,
	}
}
