// internal/delivery/telegram/client.go
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"unit-converter-bot/internal/infrastructure/config"
)

// Client - клиент Telegram Bot API поверх net/http
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый клиент Telegram
func NewClient(cfg config.TelegramConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: fmt.Sprintf("%s/bot%s/", cfg.APIBaseURL, cfg.BotToken),
	}
}

// call выполняет один запрос к Telegram API
func (c *Client) call(method string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("сериализация запроса %s: %w", method, err)
	}

	resp, err := c.httpClient.Post(c.baseURL+method, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("запрос %s: %w", method, err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("разбор ответа %s: %w", method, err)
	}
	if !result.OK {
		return fmt.Errorf("%s: telegram отказал: %s", method, result.Description)
	}

	return nil
}

// SendMessage отправляет сообщение с необязательной клавиатурой
func (c *Client) SendMessage(chatID int64, text string, replyMarkup interface{}) error {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if replyMarkup != nil {
		payload["reply_markup"] = replyMarkup
	}

	return c.call("sendMessage", payload)
}

// AnswerCallback отвечает на callback запрос
func (c *Client) AnswerCallback(callbackID, text string) error {
	payload := map[string]interface{}{
		"callback_query_id": callbackID,
	}
	if text != "" {
		payload["text"] = text
	}

	return c.call("answerCallbackQuery", payload)
}

// DeleteMessage удаляет сообщение
func (c *Client) DeleteMessage(chatID, messageID int64) error {
	return c.call("deleteMessage", map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	})
}

// GetMe возвращает сведения о боте; используется проверкой живости
func (c *Client) GetMe() (*User, error) {
	resp, err := c.httpClient.Get(c.baseURL + "getMe")
	if err != nil {
		return nil, fmt.Errorf("запрос getMe: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
		Result      *User  `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("разбор ответа getMe: %w", err)
	}
	if !result.OK || result.Result == nil {
		return nil, fmt.Errorf("getMe: telegram отказал: %s", result.Description)
	}

	return result.Result, nil
}

// SetTimeout устанавливает таймаут HTTP клиента
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}
