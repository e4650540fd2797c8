package scheduler

import (
	"testing"
	"time"
)

func TestEveryNextRun(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	next := Every(5 * time.Minute).nextRun(now)
	if want := now.Add(5 * time.Minute); !next.Equal(want) {
		t.Errorf("nextRun = %v, ожидалось %v", next, want)
	}
}

func TestDailyAtNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "время сегодня ещё не наступило",
			now:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC),
		},
		{
			name: "время сегодня уже прошло",
			now:  time.Date(2025, 6, 1, 23, 45, 0, 0, time.UTC),
			want: time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC),
		},
		{
			name: "ровно в момент запуска - на завтра",
			now:  time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC),
			want: time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC),
		},
	}

	schedule := DailyAt(23, 30)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schedule.nextRun(tt.now); !got.Equal(tt.want) {
				t.Errorf("nextRun(%v) = %v, ожидалось %v", tt.now, got, tt.want)
			}
		})
	}
}
