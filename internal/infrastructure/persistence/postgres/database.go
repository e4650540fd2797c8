// internal/infrastructure/persistence/postgres/database.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"unit-converter-bot/internal/infrastructure/config"
	"unit-converter-bot/pkg/logger"
)

// Connect открывает соединение с PostgreSQL и готовит схему архива
func Connect(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	logger.Info("📡 Подключение к PostgreSQL: %s:%d/%s", cfg.Host, cfg.Port, cfg.Name)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("открытие соединения с БД: %w", err)
	}

	// Настраиваем пул соединений
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxConnLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping БД: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("✅ PostgreSQL подключен")
	return db, nil
}

// ensureSchema создает таблицу архива, если её еще нет
func ensureSchema(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversions (
		id          UUID PRIMARY KEY,
		chat_id     TEXT NOT NULL,
		category    TEXT NOT NULL,
		from_unit   TEXT NOT NULL,
		to_unit     TEXT NOT NULL,
		input_value DOUBLE PRECISION NOT NULL,
		result      DOUBLE PRECISION NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversions_chat_id ON conversions (chat_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("создание схемы архива: %w", err)
	}
	return nil
}
