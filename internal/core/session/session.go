// internal/core/session/session.go
package session

import "time"

// Step - положение сессии в диалоге перевода величин
type Step string

const (
	StepIdle             Step = ""
	StepAwaitingValue    Step = "waiting_for_value"
	StepAwaitingCategory Step = "waiting_for_category"
	StepAwaitingFromUnit Step = "waiting_for_from_unit"
	StepAwaitingToUnit   Step = "waiting_for_to_unit"
)

// HistoryLimit - сколько последних переводов хранится в сессии
const HistoryLimit = 10

// ConversionRecord - запись об одном выполненном переводе.
// Создаётся только при успешном завершении и больше не изменяется.
type ConversionRecord struct {
	Date     time.Time `json:"date"`
	Value    float64   `json:"value"`
	FromUnit string    `json:"from_unit"`
	ToUnit   string    `json:"to_unit"`
	Result   float64   `json:"result"`
	Category string    `json:"category"`
}

// Session - состояние диалога одного чата плюс его настройки и история
type Session struct {
	Step            Step                `json:"step"`
	PendingValue    float64             `json:"value"`
	PendingCategory string              `json:"category"`
	PendingFromUnit string              `json:"from_unit"`
	PreferredUnits  map[string][]string `json:"preferred_units"`
	History         []ConversionRecord  `json:"conversion_history"`
}

// New создает пустую сессию в исходном состоянии
func New() *Session {
	return &Session{
		Step:           StepIdle,
		PreferredUnits: make(map[string][]string),
		History:        []ConversionRecord{},
	}
}

// ResetDialog сбрасывает диалог в исходное состояние и очищает
// промежуточные поля. История и предпочтения не затрагиваются.
func (s *Session) ResetDialog() {
	s.Step = StepIdle
	s.PendingValue = 0
	s.PendingCategory = ""
	s.PendingFromUnit = ""
}

// AppendHistory добавляет запись в конец истории, отбрасывая самые
// старые записи сверх лимита
func (s *Session) AppendHistory(rec ConversionRecord) {
	s.History = append(s.History, rec)
	if len(s.History) > HistoryLimit {
		s.History = s.History[len(s.History)-HistoryLimit:]
	}
}

// SaveFavorite идемпотентно добавляет обе единицы в список предпочитаемых
// для категории. Порядок вставки определяет приоритет на клавиатурах.
func (s *Session) SaveFavorite(category, fromUnit, toUnit string) {
	if s.PreferredUnits == nil {
		s.PreferredUnits = make(map[string][]string)
	}

	for _, unit := range []string{fromUnit, toUnit} {
		if !contains(s.PreferredUnits[category], unit) {
			s.PreferredUnits[category] = append(s.PreferredUnits[category], unit)
		}
	}
}

// Preferred возвращает предпочитаемые единицы категории в порядке вставки
func (s *Session) Preferred(category string) []string {
	return s.PreferredUnits[category]
}

// ResetPreferences очищает все предпочитаемые единицы
func (s *Session) ResetPreferences() {
	s.PreferredUnits = make(map[string][]string)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
