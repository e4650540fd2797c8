// internal/core/dialog/controller.go
package dialog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"unit-converter-bot/internal/core/convert"
	"unit-converter-bot/internal/core/session"
	"unit-converter-bot/internal/core/units"
	"unit-converter-bot/pkg/logger"
)

// Archiver - необязательный коллаборатор: долговременный архив
// завершенных переводов (PostgreSQL). Может быть nil.
type Archiver interface {
	Archive(chatID string, rec session.ConversionRecord) error
	CountByChat(chatID string) (int, error)
}

// Controller - конечный автомат диалога перевода величин.
// Получает типизированное событие, проверяет его против текущего шага
// сессии, мутирует сессию и возвращает описание ответа для транспорта.
type Controller struct {
	store   *session.Store
	archive Archiver
}

// NewController создает контроллер диалога
func NewController(store *session.Store, archive Archiver) *Controller {
	return &Controller{store: store, archive: archive}
}

// Handle обрабатывает одно событие чата. Обработка событий одного чата
// сериализуется хранилищем сессий.
func (c *Controller) Handle(chatID string, ev Event) Reply {
	if ev.Kind == EventShowStats {
		return c.handleStats(chatID)
	}

	var reply Reply
	var archived *session.ConversionRecord

	_ = c.store.WithSession(chatID, func(s *session.Session) error {
		reply, archived = c.dispatch(chatID, s, ev)
		return nil
	})

	// Запись в архив выполняется вне блокировки чата: это I/O,
	// и его отказ не должен влиять на состояние диалога
	if archived != nil && c.archive != nil {
		if err := c.archive.Archive(chatID, *archived); err != nil {
			logger.Error("❌ Не удалось записать перевод в архив: %v", err)
		}
	}

	return reply
}

// dispatch выполняет переход автомата по паре (шаг, тип события)
func (c *Controller) dispatch(chatID string, s *session.Session, ev Event) (Reply, *session.ConversionRecord) {
	switch ev.Kind {
	case EventStart:
		// /start и /restart возвращают диалог в исходное состояние
		s.ResetDialog()
		return Reply{Text: textWelcome, Keyboard: MainMenuKeyboard()}, nil

	case EventStartConversion:
		// Начало нового перевода допустимо из любого шага:
		// незавершенный диалог при этом сбрасывается
		s.ResetDialog()
		s.Step = session.StepAwaitingValue
		return Reply{Text: textAskValue}, nil

	case EventCancel:
		s.ResetDialog()
		return Reply{Text: textCancelled, Keyboard: MainMenuKeyboard()}, nil

	case EventDismissResult:
		s.ResetDialog()
		return Reply{DeleteMessage: true}, nil

	case EventShowHelp:
		return Reply{Text: textHelp}, nil

	case EventShowHistory:
		return Reply{Text: renderHistory(s.History)}, nil

	case EventShowSettings:
		return Reply{Text: textSettings, Keyboard: settingsKeyboard()}, nil

	case EventSaveFavorite:
		s.SaveFavorite(ev.Category, ev.FromUnit, ev.ToUnit)
		return Reply{Toast: toastFavoriteSaved}, nil

	case EventResetSettings:
		s.ResetPreferences()
		return Reply{Toast: toastSettingsReset}, nil

	case EventConvertAgain:
		return c.handleConvertAgain(s, ev), nil

	case EventText:
		return c.handleText(chatID, s, ev.Text)
	}

	return Reply{Text: textUnknownCommand, Keyboard: MainMenuKeyboard()}, nil
}

// handleText разбирает свободный текст в зависимости от текущего шага
func (c *Controller) handleText(chatID string, s *session.Session, text string) (Reply, *session.ConversionRecord) {
	switch s.Step {
	case session.StepAwaitingValue:
		return c.handleValue(s, text), nil

	case session.StepAwaitingCategory:
		return c.handleCategory(s, text), nil

	case session.StepAwaitingFromUnit:
		return c.handleFromUnit(s, text), nil

	case session.StepAwaitingToUnit:
		return c.handleToUnit(chatID, s, text)
	}

	// Idle: текст не является известной командой или кнопкой меню
	return Reply{Text: textUnknownCommand, Keyboard: MainMenuKeyboard()}, nil
}

// handleValue: ожидание числового значения
func (c *Controller) handleValue(s *session.Session, text string) Reply {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		// Невалидный ввод: остаемся на том же шаге
		return Reply{Text: textInvalidValue}
	}

	s.PendingValue = value
	s.Step = session.StepAwaitingCategory

	return Reply{
		Text:     fmt.Sprintf("✅ Значение сохранено: *%g*\n\n%s", value, textAskCategory),
		Keyboard: categoryKeyboard(),
	}
}

// handleCategory: ожидание выбора категории
func (c *Controller) handleCategory(s *session.Session, text string) Reply {
	if !units.HasCategory(text) {
		return Reply{Text: textInvalidChoice}
	}

	s.PendingCategory = text
	s.Step = session.StepAwaitingFromUnit

	return Reply{
		Text:     textAskFromUnit,
		Keyboard: unitKeyboard(text, s.Preferred(text), ""),
	}
}

// handleFromUnit: ожидание исходной единицы
func (c *Controller) handleFromUnit(s *session.Session, text string) Reply {
	if !units.HasUnit(s.PendingCategory, text) {
		return Reply{Text: textInvalidChoice}
	}

	s.PendingFromUnit = text
	s.Step = session.StepAwaitingToUnit

	return Reply{
		Text:     textAskToUnit,
		Keyboard: unitKeyboard(s.PendingCategory, s.Preferred(s.PendingCategory), text),
	}
}

// handleToUnit: ожидание целевой единицы и сам перевод.
// Выбор той же единицы, что и исходная, допустим и дает тождественный
// результат.
func (c *Controller) handleToUnit(chatID string, s *session.Session, text string) (Reply, *session.ConversionRecord) {
	if !units.HasUnit(s.PendingCategory, text) {
		return Reply{Text: textInvalidChoice}, nil
	}

	value := s.PendingValue
	category := s.PendingCategory
	fromUnit := s.PendingFromUnit
	toUnit := text

	result, err := convert.Convert(category, fromUnit, toUnit, value)
	if err != nil {
		// Сюда можно попасть только при нарушении внутренней
		// согласованности: шаг сбрасывается защитно
		logger.Error("❌ Ошибка перевода %s: %s → %s: %v", category, fromUnit, toUnit, err)
		s.ResetDialog()
		return Reply{Text: textConvertError, Keyboard: MainMenuKeyboard()}, nil
	}

	rec := session.ConversionRecord{
		Date:     time.Now(),
		Value:    value,
		FromUnit: fromUnit,
		ToUnit:   toUnit,
		Result:   result.Value,
		Category: category,
	}
	s.AppendHistory(rec)
	s.ResetDialog()

	logger.Conversion(chatID, category, fromUnit, toUnit, value, result.Value)

	return Reply{
		Text:     renderResult(value, fromUnit, toUnit, result),
		Keyboard: resultKeyboard(category, fromUnit, toUnit, value),
	}, &rec
}

// handleConvertAgain: прыжок сразу в шаг выбора целевой единицы,
// минуя ввод значения, категории и исходной единицы
func (c *Controller) handleConvertAgain(s *session.Session, ev Event) Reply {
	if !units.HasUnit(ev.Category, ev.FromUnit) {
		// Устаревший или испорченный callback
		s.ResetDialog()
		return Reply{Text: textConvertError, Keyboard: MainMenuKeyboard()}
	}

	s.Step = session.StepAwaitingToUnit
	s.PendingValue = ev.Value
	s.PendingCategory = ev.Category
	s.PendingFromUnit = ev.FromUnit

	return Reply{
		Text: fmt.Sprintf("🔄 Выберите новую единицу для перевода *%g* %s:",
			ev.Value, ev.FromUnit),
		Keyboard: unitKeyboard(ev.Category, s.Preferred(ev.Category), ev.FromUnit),
	}
}

// handleStats: статистика по архиву переводов
func (c *Controller) handleStats(chatID string) Reply {
	if c.archive == nil {
		return Reply{Text: textStatsDisabled}
	}

	total, err := c.archive.CountByChat(chatID)
	if err != nil {
		logger.Error("❌ Не удалось получить статистику чата %s: %v", chatID, err)
		return Reply{Text: textConvertError}
	}

	return Reply{Text: fmt.Sprintf("📈 Переводов в архиве: *%d*", total)}
}

// renderResult собирает сообщение с результатом перевода.
// Для температуры коэффициенты не показываются: аффинный пересчёт
// не описывается одним множителем.
func renderResult(value float64, fromUnit, toUnit string, result convert.Result) string {
	msg := fmt.Sprintf("*🎯 Результат перевода:*\n*%g* %s = *%s* %s\n",
		value, fromUnit, convert.FormatValue(result.Value), toUnit)

	if result.HasFactors {
		msg += fmt.Sprintf("\n*📊 Детали перевода:*\n1 %s = %.6f %s\n1 %s = %.6f %s\n",
			fromUnit, result.ForwardFactor, toUnit,
			toUnit, result.InverseFactor, fromUnit)
	}

	return msg
}

// renderHistory выводит последние переводы, новые сверху
func renderHistory(history []session.ConversionRecord) string {
	if len(history) == 0 {
		return textHistoryEmpty
	}

	var b strings.Builder
	b.WriteString("*🕒 Последние переводы:*\n\n")

	for i := len(history) - 1; i >= 0; i-- {
		rec := history[i]
		b.WriteString(fmt.Sprintf("*%d. %s:* %g %s ➡️ %s %s\n_%s_\n\n",
			len(history)-i, rec.Category,
			rec.Value, rec.FromUnit,
			convert.FormatValue(rec.Result), rec.ToUnit,
			rec.Date.Format("2006-01-02 15:04:05")))
	}

	return b.String()
}
