// internal/infrastructure/persistence/file/store.go
package file

import (
	"encoding/json"
	"fmt"
	"os"

	"unit-converter-bot/internal/core/session"
)

// Store хранит все сессии в одном JSON-файле.
// Каждое сохранение перезаписывает файл целиком.
type Store struct {
	path string
}

// NewStore создает файловое хранилище сессий
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load читает все сессии из файла. Отсутствие файла - не ошибка:
// возвращается пустая карта.
func (s *Store) Load() (map[string]*session.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*session.Session{}, nil
		}
		return nil, fmt.Errorf("чтение файла сессий: %w", err)
	}

	sessions := map[string]*session.Session{}
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("разбор файла сессий: %w", err)
	}

	return sessions, nil
}

// SaveAll перезаписывает файл сессий. Запись идет через временный файл
// с переименованием, чтобы не оставить полузаписанный JSON.
func (s *Store) SaveAll(sessions map[string]*session.Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация сессий: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("запись файла сессий: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("замена файла сессий: %w", err)
	}

	return nil
}
