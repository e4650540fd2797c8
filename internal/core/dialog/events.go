// internal/core/dialog/events.go
package dialog

// EventKind - тип входящего события диалога.
// События декодируются один раз на границе транспорта: внутри
// контроллера нет сравнения с текстами кнопок.
type EventKind int

const (
	// EventText - произвольный текст или нажатие текстовой кнопки
	EventText EventKind = iota
	// EventStart - команды /start, /help, /restart
	EventStart
	// EventStartConversion - начать новый перевод величин
	EventStartConversion
	// EventCancel - отмена текущей операции
	EventCancel
	// EventShowHistory - показать историю переводов
	EventShowHistory
	// EventShowSettings - показать меню настроек
	EventShowSettings
	// EventShowHelp - показать справку
	EventShowHelp
	// EventShowStats - показать статистику переводов чата
	EventShowStats
	// EventConvertAgain - шорткат: перевести то же значение в другую единицу
	EventConvertAgain
	// EventSaveFavorite - шорткат: сохранить пару единиц в избранное
	EventSaveFavorite
	// EventResetSettings - сбросить предпочитаемые единицы
	EventResetSettings
	// EventDismissResult - убрать сообщение с результатом
	EventDismissResult
)

// Event - входящее событие диалога с параметрами
type Event struct {
	Kind EventKind
	Text string // для EventText

	// Параметры шорткатов ConvertAgain / SaveFavorite
	Category string
	FromUnit string
	ToUnit   string
	Value    float64
}
