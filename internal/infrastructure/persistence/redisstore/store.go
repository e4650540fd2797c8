// internal/infrastructure/persistence/redisstore/store.go
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"unit-converter-bot/internal/core/session"
	"unit-converter-bot/internal/infrastructure/config"
	"unit-converter-bot/pkg/logger"
)

// keyPrefix - префикс ключей сессий в Redis
const keyPrefix = "unitbot:session:"

// Store хранит сессии в Redis: по одному ключу на чат, значение - JSON
type Store struct {
	client *redis.Client
}

// NewStore подключается к Redis и возвращает хранилище сессий
func NewStore(cfg config.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,

		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("📡 Подключение к Redis: %s:%d (DB: %d)", cfg.Host, cfg.Port, cfg.DB)

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("подключение к Redis: %w", err)
	}

	logger.Info("✅ Redis подключен")
	return &Store{client: client}, nil
}

// Load собирает все сессии по префиксу ключей
func (s *Store) Load() (map[string]*session.Session, error) {
	ctx := context.Background()
	sessions := map[string]*session.Session{}

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		data, err := s.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("чтение сессии %s: %w", key, err)
		}

		var sess session.Session
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			logger.Warn("⚠️ Повреждённая сессия %s пропущена: %v", key, err)
			continue
		}

		sessions[strings.TrimPrefix(key, keyPrefix)] = &sess
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("перечисление сессий: %w", err)
	}

	return sessions, nil
}

// SaveAll записывает все сессии одним конвейером команд
func (s *Store) SaveAll(sessions map[string]*session.Session) error {
	ctx := context.Background()
	pipe := s.client.Pipeline()

	for chatID, sess := range sessions {
		data, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("сериализация сессии %s: %w", chatID, err)
		}
		pipe.Set(ctx, keyPrefix+chatID, data, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("запись сессий в Redis: %w", err)
	}
	return nil
}

// Ping проверяет доступность Redis
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx).Result()
	return err
}

// Close закрывает соединение с Redis
func (s *Store) Close() error {
	return s.client.Close()
}
