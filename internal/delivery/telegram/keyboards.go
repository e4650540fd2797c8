// internal/delivery/telegram/keyboards.go
package telegram

import "unit-converter-bot/internal/core/dialog"

// buildMarkup преобразует клавиатуру диалога в разметку Telegram Bot API
func buildMarkup(kb dialog.Keyboard) interface{} {
	switch kb.Kind {
	case dialog.KeyboardReply:
		rows := make([][]ReplyKeyboardButton, 0, len(kb.Rows))
		for _, row := range kb.Rows {
			buttons := make([]ReplyKeyboardButton, 0, len(row))
			for _, btn := range row {
				buttons = append(buttons, ReplyKeyboardButton{Text: btn.Text})
			}
			rows = append(rows, buttons)
		}
		return ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true}
	case dialog.KeyboardInline:
		rows := make([][]InlineKeyboardButton, 0, len(kb.Rows))
		for _, row := range kb.Rows {
			buttons := make([]InlineKeyboardButton, 0, len(row))
			for _, btn := range row {
				buttons = append(buttons, InlineKeyboardButton{
					Text:         btn.Text,
					CallbackData: btn.Callback,
				})
			}
			rows = append(rows, buttons)
		}
		return InlineKeyboardMarkup{InlineKeyboard: rows}
	default:
		return nil
	}
}
