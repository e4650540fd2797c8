// internal/delivery/telegram/bot.go
package telegram

import (
	"strconv"
	"strings"
	"sync"

	"unit-converter-bot/internal/core/dialog"
	"unit-converter-bot/pkg/logger"
)

// queueCapacity - глубина очереди обновлений одного чата
const queueCapacity = 64

// Bot переводит обновления Telegram в события диалога и отправляет ответы
type Bot struct {
	client     *Client
	controller *dialog.Controller
	queues     sync.Map // chat id -> chan Update
}

// NewBot создает нового бота
func NewBot(client *Client, controller *dialog.Controller) *Bot {
	return &Bot{
		client:     client,
		controller: controller,
	}
}

// Dispatch ставит обновление в очередь его чата. Очередь гарантирует,
// что обновления одного чата обрабатываются в порядке поступления,
// разные чаты при этом идут параллельно. Вызывается из одной горутины
// (цикла polling), иначе порядок постановки не определен.
func (b *Bot) Dispatch(update Update) {
	chatID, ok := updateChatID(update)
	if !ok {
		return
	}

	q, running := b.queues.LoadOrStore(chatID, make(chan Update, queueCapacity))
	queue := q.(chan Update)
	if !running {
		go b.drain(queue)
	}
	queue <- update
}

// drain последовательно обрабатывает очередь одного чата
func (b *Bot) drain(queue chan Update) {
	for update := range queue {
		b.HandleUpdate(update)
	}
}

// updateChatID извлекает идентификатор чата обновления
func updateChatID(update Update) (int64, bool) {
	switch {
	case update.Message != nil && update.Message.Chat != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil &&
		update.CallbackQuery.Message.Chat != nil:
		return update.CallbackQuery.Message.Chat.ID, true
	}
	return 0, false
}

// HandleUpdate обрабатывает одно обновление: сообщение или callback
func (b *Bot) HandleUpdate(update Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

// handleMessage обрабатывает текстовое сообщение пользователя
func (b *Bot) handleMessage(msg *Message) {
	if msg.Chat == nil {
		return
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	ev := decodeMessage(msg.Text)

	reply := b.controller.Handle(chatID, ev)
	b.sendReply(msg.Chat.ID, reply)
}

// decodeMessage сопоставляет текст сообщения с событием диалога.
// Команды и кнопки главного меню распознаются на транспортной границе,
// остальной текст уходит в машину состояний как есть
func decodeMessage(text string) dialog.Event {
	switch strings.TrimSpace(text) {
	case "/start", "/restart":
		return dialog.Event{Kind: dialog.EventStart}
	case "/help":
		return dialog.Event{Kind: dialog.EventShowHelp}
	case "/stats":
		return dialog.Event{Kind: dialog.EventShowStats}
	case dialog.BtnConvert:
		return dialog.Event{Kind: dialog.EventStartConversion}
	case dialog.BtnHistory:
		return dialog.Event{Kind: dialog.EventShowHistory}
	case dialog.BtnSettings:
		return dialog.Event{Kind: dialog.EventShowSettings}
	case dialog.BtnHelp:
		return dialog.Event{Kind: dialog.EventShowHelp}
	case dialog.BtnCancel:
		return dialog.Event{Kind: dialog.EventCancel}
	default:
		return dialog.Event{Kind: dialog.EventText, Text: text}
	}
}

// handleCallback обрабатывает нажатие inline-кнопки
func (b *Bot) handleCallback(query *CallbackQuery) {
	if query.Message == nil || query.Message.Chat == nil {
		return
	}

	chatID := query.Message.Chat.ID
	ev, err := dialog.DecodeCallback(query.Data)
	if err != nil {
		logger.Warn("⚠️ Неизвестный callback от chat=%d: %q", chatID, query.Data)
		if err := b.client.AnswerCallback(query.ID, ""); err != nil {
			logger.Error("❌ Ошибка ответа на callback: %v", err)
		}
		return
	}

	reply := b.controller.Handle(strconv.FormatInt(chatID, 10), ev)

	// Telegram требует ответить на callback, иначе кнопка "зависает"
	if err := b.client.AnswerCallback(query.ID, reply.Toast); err != nil {
		logger.Error("❌ Ошибка ответа на callback: %v", err)
	}

	if reply.DeleteMessage {
		if err := b.client.DeleteMessage(chatID, query.Message.MessageID); err != nil {
			logger.Warn("⚠️ Не удалось удалить сообщение %d: %v", query.Message.MessageID, err)
		}
	}

	b.sendReply(chatID, reply)
}

// sendReply отправляет текстовый ответ с клавиатурой, если они заданы
func (b *Bot) sendReply(chatID int64, reply dialog.Reply) {
	if reply.Text == "" {
		return
	}

	markup := buildMarkup(reply.Keyboard)
	if err := b.client.SendMessage(chatID, reply.Text, markup); err != nil {
		logger.Error("❌ Ошибка отправки сообщения chat=%d: %v", chatID, err)
	}
}
