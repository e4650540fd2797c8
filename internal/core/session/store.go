// internal/core/session/store.go
package session

import (
	"sync"

	"unit-converter-bot/pkg/logger"
)

// Backend - коллаборатор персистентности: хранилище "chat id -> сессия".
// Карта целиком загружается при старте и целиком перезаписывается
// после каждой мутации.
type Backend interface {
	Load() (map[string]*Session, error)
	SaveAll(sessions map[string]*Session) error
}

// Store держит сессии в памяти и сериализует обработку по чатам:
// события одного чата выполняются строго последовательно, события
// разных чатов - параллельно.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	locks    sync.Map // chatID -> *sync.Mutex
	saveMu   sync.Mutex
	backend  Backend
}

// NewStore создает хранилище сессий поверх бэкенда персистентности
func NewStore(backend Backend) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		backend:  backend,
	}
}

// Load загружает все сессии из бэкенда. При ошибке загрузки бот
// стартует с пустым набором сессий, а не падает.
func (s *Store) Load() {
	loaded, err := s.backend.Load()
	if err != nil {
		logger.Error("❌ Не удалось загрузить сессии: %v (старт с пустым набором)", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for chatID, sess := range loaded {
		if sess == nil {
			continue
		}
		if sess.PreferredUnits == nil {
			sess.PreferredUnits = make(map[string][]string)
		}
		s.sessions[chatID] = sess
	}
	logger.Info("✅ Загружено сессий: %d", len(s.sessions))
}

// chatLock возвращает мьютекс конкретного чата
func (s *Store) chatLock(chatID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(chatID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithSession выполняет fn над сессией чата под блокировкой этого чата
// и сохраняет все сессии после мутации. Сессия создается лениво при
// первом обращении. Ошибка сохранения логируется, но не прерывает
// обработку: состояние в памяти уже продвинуто.
func (s *Store) WithSession(chatID string, fn func(sess *Session) error) error {
	lock := s.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = New()
		s.sessions[chatID] = sess
	}
	err := fn(sess)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.persist()
	return nil
}

// persist перезаписывает все сессии в бэкенде. Сохранения идут строго
// по одному: параллельные записи одного файла могут опубликовать битый
// JSON. Читающая блокировка не даёт мутациям идти параллельно
// с сериализацией.
func (s *Store) persist() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.backend.SaveAll(s.sessions); err != nil {
		logger.Error("❌ Не удалось сохранить сессии: %v", err)
	}
}

// Snapshot возвращает копию сессии чата (для чтения вне диалога)
func (s *Store) Snapshot(chatID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return Session{}, false
	}

	copied := *sess
	copied.History = append([]ConversionRecord(nil), sess.History...)
	copied.PreferredUnits = make(map[string][]string, len(sess.PreferredUnits))
	for cat, list := range sess.PreferredUnits {
		copied.PreferredUnits[cat] = append([]string(nil), list...)
	}
	return copied, true
}

// Count возвращает число известных сессий
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
