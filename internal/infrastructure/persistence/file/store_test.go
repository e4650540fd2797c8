package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-converter-bot/internal/core/session"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "нет_такого.json"))

	sessions, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store := NewStore(path)

	sess := session.New()
	sess.Step = session.StepAwaitingToUnit
	sess.PendingValue = 3.5
	sess.PendingCategory = "Длина"
	sess.PendingFromUnit = "m"
	sess.SaveFavorite("Длина", "m", "km")
	sess.AppendHistory(session.ConversionRecord{
		Date:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Value:    3.5,
		FromUnit: "m",
		ToUnit:   "km",
		Result:   0.0035,
		Category: "Длина",
	})

	require.NoError(t, store.SaveAll(map[string]*session.Session{"100": sess}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Contains(t, loaded, "100")

	got := loaded["100"]
	assert.Equal(t, session.StepAwaitingToUnit, got.Step)
	assert.Equal(t, 3.5, got.PendingValue)
	assert.Equal(t, []string{"m", "km"}, got.Preferred("Длина"))
	require.Len(t, got.History, 1)
	assert.Equal(t, 0.0035, got.History[0].Result)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{не json"), 0644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.json")
	store := NewStore(path)

	require.NoError(t, store.SaveAll(map[string]*session.Session{"1": session.New()}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sessions.json", entries[0].Name())
}
