// internal/infrastructure/persistence/postgres/conversions.go
package postgres

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"unit-converter-bot/internal/core/session"
)

// ConversionRepository - долговременный архив завершенных переводов.
// История в сессии ограничена последними записями, архив хранит всё.
type ConversionRepository struct {
	db *sqlx.DB
}

// NewConversionRepository создает репозиторий архива переводов
func NewConversionRepository(db *sqlx.DB) *ConversionRepository {
	return &ConversionRepository{db: db}
}

// Archive записывает один завершенный перевод
func (r *ConversionRepository) Archive(chatID string, rec session.ConversionRecord) error {
	query := `
		INSERT INTO conversions (
			id, chat_id, category, from_unit, to_unit,
			input_value, result, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query,
		uuid.NewString(), chatID, rec.Category, rec.FromUnit, rec.ToUnit,
		rec.Value, rec.Result, rec.Date,
	)
	if err != nil {
		return fmt.Errorf("запись перевода в архив: %w", err)
	}
	return nil
}

// CountByChat возвращает число архивных переводов чата
func (r *ConversionRepository) CountByChat(chatID string) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM conversions WHERE chat_id = $1`, chatID)
	if err != nil {
		return 0, fmt.Errorf("подсчет переводов чата: %w", err)
	}
	return count, nil
}
