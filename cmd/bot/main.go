package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"unit-converter-bot/internal/core/dialog"
	"unit-converter-bot/internal/core/session"
	"unit-converter-bot/internal/core/units"
	"unit-converter-bot/internal/delivery/telegram"
	"unit-converter-bot/internal/infrastructure/config"
	"unit-converter-bot/internal/infrastructure/persistence/file"
	"unit-converter-bot/internal/infrastructure/persistence/postgres"
	"unit-converter-bot/internal/infrastructure/persistence/redisstore"
	"unit-converter-bot/pkg/logger"
	"unit-converter-bot/pkg/scheduler"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	// Инициализируем логгер
	if err := logger.InitGlobal(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Debug); err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer logger.GetLogger().Close()

	printHeader("БОТ-КОНВЕРТЕР ФИЗИЧЕСКИХ ВЕЛИЧИН")
	fmt.Printf("🔧 Конфигурация:\n")
	fmt.Printf("   Категорий величин: %d\n", len(units.Categories()))
	fmt.Printf("   Хранилище сессий: %s\n", map[bool]string{true: "Redis ⚡", false: "JSON-файл 📄"}[cfg.Redis.Enabled])
	fmt.Printf("   Архив переводов (PostgreSQL): %s\n", map[bool]string{true: "включен", false: "выключен"}[cfg.Database.Enabled])
	fmt.Printf("   Интервал мониторинга: %s\n", cfg.MonitorInterval)
	fmt.Println()

	// Выбираем бэкенд хранения сессий
	var backend session.Backend
	if cfg.Redis.Enabled {
		redisBackend, err := redisstore.NewStore(cfg.Redis)
		if err != nil {
			logger.Error("❌ Redis недоступен: %v", err)
			log.Fatalf("Не удалось подключиться к Redis: %v", err)
		}
		defer redisBackend.Close()
		backend = redisBackend
	} else {
		backend = file.NewStore(cfg.SessionsFile)
	}

	store := session.NewStore(backend)
	store.Load()
	logger.Info("📦 Загружено сессий: %d", store.Count())

	// Архив переводов в PostgreSQL — опциональный
	var archive dialog.Archiver
	if cfg.Database.Enabled {
		db, err := postgres.Connect(cfg.Database)
		if err != nil {
			logger.Error("❌ PostgreSQL недоступен: %v", err)
			log.Fatalf("Не удалось подключиться к базе данных: %v", err)
		}
		defer db.Close()
		archive = postgres.NewConversionRepository(db)
	}

	controller := dialog.NewController(store, archive)

	// Telegram клиент и проверка токена
	client := telegram.NewClient(cfg.Telegram)
	me, err := client.GetMe()
	if err != nil {
		logger.Error("❌ Telegram API недоступен: %v", err)
		log.Fatalf("Проверка токена не прошла: %v", err)
	}
	logger.Info("🤖 Бот авторизован: @%s (id=%d)", me.Username, me.ID)

	bot := telegram.NewBot(client, controller)
	polling := telegram.NewPollingClient(cfg.Telegram, bot)
	polling.Start()

	// Фоновые задачи: проверка связи с Telegram и суточная сводка
	sched := scheduler.New()
	sched.Register(&scheduler.Job{
		Name:     "telegram-liveness",
		Schedule: scheduler.Every(cfg.MonitorInterval),
		Handler: func(ctx context.Context) error {
			if _, err := client.GetMe(); err != nil {
				return fmt.Errorf("telegram недоступен: %w", err)
			}
			return nil
		},
	})
	sched.Register(&scheduler.Job{
		Name:     "daily-summary",
		Schedule: scheduler.DailyAt(0, 0),
		Handler: func(ctx context.Context) error {
			logger.Info("📊 Суточная сводка: активных сессий %d", store.Count())
			return nil
		},
	})
	sched.Start()

	logger.Info("✅ Бот запущен, ожидаем сообщения...")

	// Ожидаем сигнал завершения
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logger.Info("🛑 Получен сигнал %v, завершаем работу...", sig)
	polling.Stop()
	sched.Stop()
	logger.Info("👋 Бот остановлен")
}

// printHeader выводит заголовок запуска
func printHeader(title string) {
	line := strings.Repeat("=", len([]rune(title))+4)
	fmt.Println(line)
	fmt.Printf("  %s\n", title)
	fmt.Println(line)
}
