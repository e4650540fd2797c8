// internal/delivery/telegram/polling.go
package telegram

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"unit-converter-bot/internal/infrastructure/config"
	"unit-converter-bot/pkg/logger"
)

// PollingClient - long-polling цикл получения обновлений.
// HTTP-таймаут держится больше таймаута long-polling на стороне Telegram.
type PollingClient struct {
	httpClient  *http.Client
	baseURL     string
	pollTimeout int
	backoff     time.Duration

	bot      *Bot
	offset   int
	stopChan chan struct{}
}

// NewPollingClient создает новый polling клиент
func NewPollingClient(cfg config.TelegramConfig, bot *Bot) *PollingClient {
	return &PollingClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.PollTimeout+5) * time.Second,
		},
		baseURL:     fmt.Sprintf("%s/bot%s/", cfg.APIBaseURL, cfg.BotToken),
		pollTimeout: cfg.PollTimeout,
		backoff:     cfg.RetryBackoff,
		bot:         bot,
		stopChan:    make(chan struct{}),
	}
}

// Start запускает цикл polling в фоновой горутине
func (pc *PollingClient) Start() {
	logger.Info("🔄 Запуск polling обновлений Telegram...")
	go pc.pollLoop()
}

// Stop останавливает цикл polling
func (pc *PollingClient) Stop() {
	close(pc.stopChan)
	logger.Info("🛑 Polling остановлен")
}

// pollLoop - основной цикл: при ошибках транспорта переподключение
// с фиксированной паузой; состояние сессий при этом не теряется
func (pc *PollingClient) pollLoop() {
	for {
		select {
		case <-pc.stopChan:
			return
		default:
		}

		if err := pc.fetchUpdates(); err != nil {
			logger.Error("❌ Ошибка получения обновлений: %v. Повтор через %s", err, pc.backoff)
			select {
			case <-time.After(pc.backoff):
			case <-pc.stopChan:
				return
			}
		}
	}
}

// fetchUpdates запрашивает и обрабатывает пачку обновлений
func (pc *PollingClient) fetchUpdates() error {
	url := pc.baseURL + "getUpdates?offset=" + strconv.Itoa(pc.offset) +
		"&timeout=" + strconv.Itoa(pc.pollTimeout)

	resp, err := pc.httpClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		OK          bool     `json:"ok"`
		Description string   `json:"description"`
		Result      []Update `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("разбор обновлений: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("getUpdates: telegram отказал: %s", result.Description)
	}

	for _, update := range result.Result {
		pc.offset = update.UpdateID + 1

		// Очереди бота сохраняют порядок поступления внутри чата
		// и обрабатывают разные чаты параллельно
		pc.bot.Dispatch(update)
	}

	return nil
}
