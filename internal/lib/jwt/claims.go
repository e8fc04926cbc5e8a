// Package jwt реализует генерацию и парсинг токена доступа админ-панели.
//
// Токен выдаётся формой входа, хранится в cookie access_token и удаляется
// при выходе. Никакой middleware его не требует: страницы доступны и без него.
package jwt

import "github.com/golang-jwt/jwt/v5"

// CustomClaims описывает данные, хранящиеся в токене доступа.
type CustomClaims struct {
	Username             string `json:"username"` // Имя пользователя из формы входа
	jwt.RegisteredClaims        // Стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}
