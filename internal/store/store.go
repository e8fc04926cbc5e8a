// Package store реализует сторы админ-панели: по одному на коллекцию
// товаров и пользователей. Стор хранит авторитетную копию серверного
// состояния, синхронизирует её операциями удалённого API и отдаёт
// отфильтрованное представление по текущему поисковому запросу.
//
// Любая ошибка удалённого вызова поглощается стором: наружу она попадает
// только строкой в поле Error очередного снимка, вызывающая сторона
// никогда не получает error.
package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/Yuter777/user-products-new/internal/lib/sl"
	"github.com/Yuter777/user-products-new/internal/metrics"
)

// Entity объединяет записи, идентифицируемые строковым id.
type Entity interface {
	EntityID() string
}

// Remote описывает операции удалённого API, через которые стор
// синхронизирует свою коллекцию.
type Remote[T Entity] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Matcher сообщает, попадает ли запись под поисковый запрос.
// Запрос передаётся уже приведённым к нижнему регистру.
type Matcher[T Entity] func(item T, query string) bool

// Snapshot — консистентный снимок состояния стора.
// Items — авторитетная коллекция, Visible — её подмножество по текущему
// запросу в том же относительном порядке.
type Snapshot[T Entity] struct {
	Loading bool
	Error   string
	Query   string
	Items   []T
	Visible []T
}

// Store хранит коллекцию одного типа записей и защищает её мьютексом:
// каждое изменение состояния атомарно. Мьютекс не удерживается на время
// сетевого вызова, поэтому две одновременно запущенные операции
// разрешаются по принципу "последняя запись побеждает".
type Store[T Entity] struct {
	name   string
	remote Remote[T]
	match  Matcher[T]
	log    *slog.Logger

	mu        sync.Mutex
	loading   bool
	errMsg    string
	query     string
	items     []T
	fetched   bool
	listeners []func(Snapshot[T])
}

// New создаёт стор с заданным удалённым API и предикатом поиска.
func New[T Entity](name string, remote Remote[T], match Matcher[T], log *slog.Logger) *Store[T] {
	return &Store[T]{
		name:   name,
		remote: remote,
		match:  match,
		log:    log.With(slog.String("store", name)),
	}
}

// OnChange регистрирует слушателя, вызываемого после каждого изменения
// состояния. Слушатели вызываются синхронно, вне мьютекса.
func (s *Store[T]) OnChange(fn func(Snapshot[T])) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Snapshot возвращает текущее состояние стора.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store[T]) snapshotLocked() Snapshot[T] {
	snap := Snapshot[T]{
		Loading: s.loading,
		Error:   s.errMsg,
		Query:   s.query,
		Items:   append([]T(nil), s.items...),
	}
	snap.Visible = filter(snap.Items, s.query, s.match)
	return snap
}

func filter[T Entity](items []T, query string, match Matcher[T]) []T {
	if query == "" {
		return items
	}
	lowered := strings.ToLower(query)
	visible := make([]T, 0, len(items))
	for _, item := range items {
		if match(item, lowered) {
			visible = append(visible, item)
		}
	}
	return visible
}

// begin переводит стор в состояние загрузки. Ошибка прошлой операции
// сохраняется до завершения текущей.
func (s *Store[T]) begin() {
	s.mu.Lock()
	s.loading = true
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Store[T]) notify(snap Snapshot[T]) {
	s.mu.Lock()
	listeners := append(([]func(Snapshot[T]))(nil), s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}

// finish завершает операцию: снимает loading, применяет mutate к состоянию
// и рассылает снимок слушателям.
func (s *Store[T]) finish(op string, err error, mutate func()) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.errMsg = ""
	}
	if mutate != nil {
		mutate()
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	outcome := "success"
	if err != nil {
		outcome = "error"
		s.log.Error("operation failed", sl.Op(op), sl.Err(err))
	} else {
		s.log.Info("operation finished", sl.Op(op), slog.Int("items", len(snap.Items)))
	}
	metrics.ObserveOperation(s.name, op, outcome)
	s.notify(snap)
}

// FetchAll заменяет коллекцию ответом бэкенда. Успешная загрузка сбрасывает
// поисковый запрос и ошибку; неуспешная опустошает коллекцию и записывает
// текст ошибки.
func (s *Store[T]) FetchAll(ctx context.Context) {
	s.begin()
	items, err := s.remote.List(ctx)
	s.finish("fetch", err, func() {
		s.fetched = true
		if err != nil {
			s.items = nil
			return
		}
		s.items = items
		s.query = ""
	})
}

// EnsureFetched выполняет первоначальную загрузку ровно один раз:
// повторные вызовы после первой завершённой загрузки ничего не делают.
func (s *Store[T]) EnsureFetched(ctx context.Context) {
	s.mu.Lock()
	fetched := s.fetched
	s.mu.Unlock()
	if !fetched {
		s.FetchAll(ctx)
	}
}

// Create отправляет новую запись и добавляет подтверждённую бэкендом копию
// в конец коллекции. При ошибке коллекция не меняется.
func (s *Store[T]) Create(ctx context.Context, draft T) {
	s.begin()
	created, err := s.remote.Create(ctx, draft)
	s.finish("create", err, func() {
		if err != nil {
			return
		}
		s.items = append(s.items, created)
	})
}

// Update отправляет обновление записи и заменяет элемент с совпадающим id
// подтверждённой копией. Если такого элемента нет, коллекция не меняется
// и это не считается ошибкой.
func (s *Store[T]) Update(ctx context.Context, id string, item T) {
	s.begin()
	updated, err := s.remote.Update(ctx, id, item)
	s.finish("update", err, func() {
		if err != nil {
			return
		}
		for i := range s.items {
			if s.items[i].EntityID() == id {
				s.items[i] = updated
			}
		}
	})
}

// Delete удаляет запись на бэкенде и убирает из коллекции каждый элемент
// с совпадающим id (ожидается не более одного).
func (s *Store[T]) Delete(ctx context.Context, id string) {
	s.begin()
	err := s.remote.Delete(ctx, id)
	s.finish("delete", err, func() {
		if err != nil {
			return
		}
		kept := s.items[:0]
		for _, item := range s.items {
			if item.EntityID() != id {
				kept = append(kept, item)
			}
		}
		s.items = kept
	})
}

// Search запоминает поисковый запрос. Операция локальная: бэкенд не
// вызывается, loading и ошибка не меняются, видимая коллекция всегда
// выводится заново из авторитетной, поэтому повторный вызов с тем же
// запросом даёт тот же результат, а пустой запрос возвращает всё.
func (s *Store[T]) Search(query string) {
	s.mu.Lock()
	s.query = query
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}
