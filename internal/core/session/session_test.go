package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendHistoryBounded(t *testing.T) {
	s := New()

	for i := 0; i < HistoryLimit+1; i++ {
		s.AppendHistory(ConversionRecord{
			Date:  time.Date(2025, 1, 1, 0, i, 0, 0, time.UTC),
			Value: float64(i),
		})
	}

	require.Len(t, s.History, HistoryLimit)
	// Вытеснена самая старая запись
	assert.Equal(t, float64(1), s.History[0].Value)
	assert.Equal(t, float64(HistoryLimit), s.History[len(s.History)-1].Value)
}

func TestSaveFavorite(t *testing.T) {
	s := New()

	s.SaveFavorite("Длина", "m", "km")
	assert.Equal(t, []string{"m", "km"}, s.Preferred("Длина"))

	// Повторное сохранение не создает дубликатов
	s.SaveFavorite("Длина", "m", "km")
	assert.Equal(t, []string{"m", "km"}, s.Preferred("Длина"))

	// Новая единица дописывается в конец: порядок вставки сохраняется
	s.SaveFavorite("Длина", "km", "cm")
	assert.Equal(t, []string{"m", "km", "cm"}, s.Preferred("Длина"))

	// Другая категория независима
	assert.Empty(t, s.Preferred("Масса"))
}

func TestSaveFavoriteNilMap(t *testing.T) {
	// Сессия, десериализованная из старого JSON, может прийти без карты
	s := &Session{}
	s.SaveFavorite("Масса", "kg", "lb")
	assert.Equal(t, []string{"kg", "lb"}, s.Preferred("Масса"))
}

func TestResetDialogKeepsHistoryAndPreferences(t *testing.T) {
	s := New()
	s.Step = StepAwaitingToUnit
	s.PendingValue = 42
	s.PendingCategory = "Длина"
	s.PendingFromUnit = "m"
	s.SaveFavorite("Длина", "m", "km")
	s.AppendHistory(ConversionRecord{Value: 42})

	s.ResetDialog()

	assert.Equal(t, StepIdle, s.Step)
	assert.Zero(t, s.PendingValue)
	assert.Empty(t, s.PendingCategory)
	assert.Empty(t, s.PendingFromUnit)
	assert.Len(t, s.History, 1)
	assert.Equal(t, []string{"m", "km"}, s.Preferred("Длина"))
}

func TestResetPreferences(t *testing.T) {
	s := New()
	s.SaveFavorite("Длина", "m", "km")
	s.SaveFavorite("Масса", "kg", "g")

	s.ResetPreferences()

	assert.Empty(t, s.Preferred("Длина"))
	assert.Empty(t, s.Preferred("Масса"))
}
