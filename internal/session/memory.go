package session

import (
	"encoding/json"
	"sync"
	"time"
)

// Memory хранит сессионные данные в памяти процесса. Значения проходят
// через ту же JSON-сериализацию, что и в redis, чтобы поведение обеих
// реализаций совпадало.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemory создаёт пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// Get читает значение по ключу. Возвращает false, если ключа нет
// или запись истекла.
func (m *Memory) Get(key string, result any) (bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, result); err != nil {
		return false, err
	}
	return true, nil
}

// Set сохраняет значение с временем жизни.
func (m *Memory) Set(key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.entries[key] = memoryEntry{data: data, expiresAt: time.Now().Add(expiration)}
	m.mu.Unlock()
	return nil
}

// Invalidate удаляет значение по ключу.
func (m *Memory) Invalidate(key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}
