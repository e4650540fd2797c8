// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// TelegramConfig - настройки Telegram-бота
type TelegramConfig struct {
	// Токен обязателен: встроенных значений по умолчанию нет,
	// без токена бот не стартует
	BotToken string

	APIBaseURL     string
	PollTimeout    int           // таймаут long-polling, секунды
	RequestTimeout time.Duration // таймаут обычных HTTP запросов
	RetryBackoff   time.Duration // пауза перед переподключением polling
}

// RedisConfig - настройки Redis-хранилища сессий
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig - настройки PostgreSQL (архив переводов)
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	MaxConnLifetime time.Duration
}

// LoggingConfig - настройки логирования
type LoggingConfig struct {
	Level string
	File  string
	Debug bool
}

// Config - конфигурация всего приложения
type Config struct {
	Telegram TelegramConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Logging  LoggingConfig

	// Путь JSON-файла сессий, используется когда Redis выключен
	SessionsFile string

	// Интервал фоновой проверки связи с Telegram API
	MonitorInterval time.Duration
}

// LoadConfig загружает конфигурацию из .env файла и переменных окружения
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		fmt.Printf("⚠️  Config file not found, using environment variables\n")
	}

	cfg := &Config{}

	// ======================
	// TELEGRAM
	// ======================
	cfg.Telegram.BotToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN не задан")
	}
	cfg.Telegram.APIBaseURL = getEnv("TELEGRAM_API_URL", "https://api.telegram.org")
	cfg.Telegram.PollTimeout = getEnvInt("TELEGRAM_POLL_TIMEOUT", 30)
	cfg.Telegram.RequestTimeout = getEnvDuration("TELEGRAM_REQUEST_TIMEOUT", 30*time.Second)
	cfg.Telegram.RetryBackoff = getEnvDuration("TELEGRAM_RETRY_BACKOFF", 10*time.Second)

	// ======================
	// REDIS
	// ======================
	cfg.Redis.Enabled = getEnvBool("REDIS_ENABLED", false)
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnvInt("REDIS_PORT", 6379)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)
	cfg.Redis.DialTimeout = getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.Redis.ReadTimeout = getEnvDuration("REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.Redis.WriteTimeout = getEnvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)

	// ======================
	// БАЗА ДАННЫХ
	// ======================
	cfg.Database.Enabled = getEnvBool("DB_ENABLED", false)
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	cfg.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 5)
	cfg.Database.MaxConnLifetime = getEnvDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute)

	// ======================
	// ЛОГИРОВАНИЕ И ПРОЧЕЕ
	// ======================
	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")
	cfg.Logging.File = getEnv("LOG_FILE", "logs/unit_converter.log")
	cfg.Logging.Debug = getEnvBool("DEBUG_MODE", false)

	cfg.SessionsFile = getEnv("SESSIONS_FILE", "user_data.json")
	cfg.MonitorInterval = getEnvDuration("MONITOR_INTERVAL", 5*time.Minute)

	return cfg, nil
}

// Вспомогательные функции чтения переменных окружения

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
