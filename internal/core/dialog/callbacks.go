// internal/core/dialog/callbacks.go
package dialog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Кодирование callback-нагрузок. Контракт: после тега нагрузка
// разбирается ограниченным разбиением не более чем на 3 поля, остаток
// попадает в последнее поле дословно. Имена категорий и единиц не
// содержат разделителя, но контракт разбора от этого не зависит.
const (
	tagConvertAgain = "convert_again_"
	tagSaveFavorite = "save_favorite_"

	CallbackCancel        = "cancel"
	CallbackResetSettings = "reset_settings"
)

// ErrUnknownCallback возвращается для нераспознанной нагрузки
var ErrUnknownCallback = errors.New("неизвестный callback")

// EncodeConvertAgain кодирует шорткат повторного перевода
func EncodeConvertAgain(category, fromUnit string, value float64) string {
	return tagConvertAgain + category + "_" + fromUnit + "_" +
		strconv.FormatFloat(value, 'g', -1, 64)
}

// EncodeSaveFavorite кодирует шорткат сохранения в избранное
func EncodeSaveFavorite(category, fromUnit, toUnit string) string {
	return tagSaveFavorite + category + "_" + fromUnit + "_" + toUnit
}

// DecodeCallback разбирает callback-нагрузку в типизированное событие.
// Вызывается один раз на границе транспорта.
func DecodeCallback(data string) (Event, error) {
	switch {
	case data == CallbackCancel:
		return Event{Kind: EventDismissResult}, nil

	case data == CallbackResetSettings:
		return Event{Kind: EventResetSettings}, nil

	case strings.HasPrefix(data, tagConvertAgain):
		rest := strings.TrimPrefix(data, tagConvertAgain)
		parts := strings.SplitN(rest, "_", 3)
		if len(parts) != 3 {
			return Event{}, fmt.Errorf("%w: %q", ErrUnknownCallback, data)
		}
		value, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return Event{}, fmt.Errorf("%w: значение в %q", ErrUnknownCallback, data)
		}
		return Event{
			Kind:     EventConvertAgain,
			Category: parts[0],
			FromUnit: parts[1],
			Value:    value,
		}, nil

	case strings.HasPrefix(data, tagSaveFavorite):
		rest := strings.TrimPrefix(data, tagSaveFavorite)
		parts := strings.SplitN(rest, "_", 3)
		if len(parts) != 3 {
			return Event{}, fmt.Errorf("%w: %q", ErrUnknownCallback, data)
		}
		return Event{
			Kind:     EventSaveFavorite,
			Category: parts[0],
			FromUnit: parts[1],
			ToUnit:   parts[2],
		}, nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrUnknownCallback, data)
}
