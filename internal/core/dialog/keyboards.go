// internal/core/dialog/keyboards.go
package dialog

import (
	"unit-converter-bot/internal/core/units"
)

// unitsPerRow - ширина рядов клавиатуры выбора единиц
const unitsPerRow = 3

// MainMenuKeyboard - главное меню бота
func MainMenuKeyboard() Keyboard {
	return Keyboard{
		Kind: KeyboardReply,
		Rows: [][]Button{
			replyRow(BtnConvert, BtnHistory),
			replyRow(BtnSettings, BtnHelp),
		},
	}
}

// categoryKeyboard - выбор категории величин, по 3 в ряд, плюс отмена
func categoryKeyboard() Keyboard {
	names := units.Categories()

	var rows [][]Button
	for i := 0; i < len(names); i += unitsPerRow {
		end := i + unitsPerRow
		if end > len(names) {
			end = len(names)
		}
		rows = append(rows, replyRow(names[i:end]...))
	}
	rows = append(rows, replyRow(BtnCancel))

	return Keyboard{Kind: KeyboardReply, Rows: rows}
}

// orderedUnits возвращает единицы категории для клавиатуры:
// сначала избранные в порядке их сохранения, затем остальные в порядке
// реестра; exclude пропускается.
func orderedUnits(category string, preferred []string, exclude string) []string {
	all, err := units.Units(category)
	if err != nil {
		return nil
	}

	inPreferred := make(map[string]bool, len(preferred))
	var ordered []string
	for _, u := range preferred {
		if u == exclude || !units.HasUnit(category, u) {
			continue
		}
		if !inPreferred[u] {
			inPreferred[u] = true
			ordered = append(ordered, u)
		}
	}
	for _, u := range all {
		if u == exclude || inPreferred[u] {
			continue
		}
		ordered = append(ordered, u)
	}
	return ordered
}

// unitKeyboard - выбор единицы: избранные каждая в своём ряду,
// остальные по 3 в ряд, в конце отмена
func unitKeyboard(category string, preferred []string, exclude string) Keyboard {
	ordered := orderedUnits(category, preferred, exclude)

	preferredSet := make(map[string]bool, len(preferred))
	for _, u := range preferred {
		preferredSet[u] = true
	}

	var rows [][]Button
	var rest []string
	for _, u := range ordered {
		if preferredSet[u] {
			rows = append(rows, replyRow(u))
		} else {
			rest = append(rest, u)
		}
	}
	for i := 0; i < len(rest); i += unitsPerRow {
		end := i + unitsPerRow
		if end > len(rest) {
			end = len(rest)
		}
		rows = append(rows, replyRow(rest[i:end]...))
	}
	rows = append(rows, replyRow(BtnCancel))

	return Keyboard{Kind: KeyboardReply, Rows: rows}
}

// resultKeyboard - inline-кнопки под сообщением с результатом
func resultKeyboard(category, fromUnit, toUnit string, value float64) Keyboard {
	return Keyboard{
		Kind: KeyboardInline,
		Rows: [][]Button{
			{
				{Text: btnConvertAgain, Callback: EncodeConvertAgain(category, fromUnit, value)},
				{Text: btnSaveFavorite, Callback: EncodeSaveFavorite(category, fromUnit, toUnit)},
			},
			{
				{Text: btnDismiss, Callback: CallbackCancel},
			},
		},
	}
}

// settingsKeyboard - inline-меню настроек
func settingsKeyboard() Keyboard {
	return Keyboard{
		Kind: KeyboardInline,
		Rows: [][]Button{
			{{Text: btnResetSettings, Callback: CallbackResetSettings}},
			{{Text: btnDismiss, Callback: CallbackCancel}},
		},
	}
}
