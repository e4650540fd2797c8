// internal/core/dialog/texts.go
package dialog

// Тексты кнопок главного меню
const (
	BtnConvert  = "Перевод величин 📊"
	BtnHistory  = "История переводов 🕒"
	BtnSettings = "Настройки ⚙️"
	BtnHelp     = "Помощь ℹ️"
	BtnCancel   = "Отмена ❌"
)

// Тексты сообщений пользователю. Никакие внутренние ошибки наружу
// не показываются: пользователь всегда получает инструкцию к действию.
const (
	textWelcome = "*Добро пожаловать в бот перевода величин!* 🚀\n\n" +
		"Нажмите «" + BtnConvert + "», чтобы начать новый перевод, " +
		"или «" + BtnHelp + "» для справки."

	textHelp = "*🎓 Как пользоваться ботом:*\n\n" +
		"1. *" + BtnConvert + "*\n" +
		"   • начните новый перевод\n" +
		"   • выберите категорию и единицы\n" +
		"   • получите результат с коэффициентами\n\n" +
		"2. *" + BtnHistory + "*\n" +
		"   • последние 10 переводов\n" +
		"   • повторный перевод в один клик\n\n" +
		"3. *" + BtnSettings + "*\n" +
		"   • избранные единицы показываются первыми\n" +
		"   • сброс настроек"

	textAskValue       = "📝 Введите числовое значение, которое нужно перевести:"
	textInvalidValue   = "⚠️ Введите целое или десятичное число. Попробуйте ещё раз:"
	textAskCategory    = "Выберите категорию величин:"
	textInvalidChoice  = "⚠️ Выберите вариант кнопкой на клавиатуре."
	textAskFromUnit    = "🔽 Выберите исходную единицу (текущая единица значения):"
	textAskToUnit      = "🔼 Выберите целевую единицу (единица результата):"
	textCancelled      = "❌ Текущая операция отменена."
	textUnknownCommand = "⚠️ Неизвестная команда. Используйте кнопки ниже:"
	textConvertError   = "⚠️ Произошла ошибка при переводе. Попробуйте ещё раз."
	textHistoryEmpty   = "⚠️ История переводов пока пуста."
	textSettings       = "*⚙️ Настройки бота:*\n\nВыберите действие:"
	textStatsDisabled  = "⚠️ Архив переводов отключен."

	toastFavoriteSaved = "Единицы сохранены в избранное ✅"
	toastSettingsReset = "Настройки сброшены 🔄"

	// Кнопки под сообщением с результатом
	btnConvertAgain  = "Перевести ещё 🔄"
	btnSaveFavorite  = "В избранное ⭐"
	btnDismiss       = "Отмена"
	btnResetSettings = "Сбросить настройки 🔄"
)
