// Package session хранит настройки оформления по идентификатору сессии.
// Основная реализация — redis; когда redis не настроен, используется
// хранилище в памяти процесса.
package session

import "time"

// Store описывает методы хранилища сессионных данных.
type Store interface {
	// Get пытается получить значение по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение по ключу.
	Invalidate(key string) error
}

// TTL — время жизни сессионных настроек.
const TTL = 30 * 24 * time.Hour
