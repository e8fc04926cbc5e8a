package models

// LoginRequest описывает данные формы входа.
// Учётные данные нигде не проверяются: сервис только выдаёт токен
// и указывает клиенту, куда перейти.
type LoginRequest struct {
	Username string `json:"username" validate:"required"` // Имя пользователя
	Password string `json:"password" validate:"required"` // Пароль
	Remember bool   `json:"remember"`                     // Запомнить меня
}

// RegisterRequest описывает данные формы регистрации.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`            // Электронная почта
	Username string `json:"username" validate:"required"`               // Имя пользователя
	Password string `json:"password" validate:"required,min=6"`         // Пароль, минимум 6 символов
	Confirm  string `json:"confirm" validate:"required,eqfield=Password"` // Подтверждение пароля
}
