// internal/streak/engine_test.go
package streak

import (
	"testing"
	"time"

	"github.com/RaczoOBY/bible-app/internal/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monthNames = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	doc := &plan.Document{
		Metadata: plan.Metadata{Name: "Plano de Teste", TotalDays: 300, DaysPerMonth: 25, ReadingsPerDay: 4},
		Gamification: plan.Gamification{
			XPPerReading:  10,
			XPDayComplete: 50,
			Multipliers:   map[string]float64{"3": 1.2, "7": 1.5, "14": 2.0, "30": 3.0},
		},
		Levels: []plan.Level{
			{Level: 1, Name: "Semente", XPMin: 0, XPMax: 99},
			{Level: 2, Name: "Broto", XPMin: 100, XPMax: 9999999},
		},
	}
	for id := 1; id <= 12; id++ {
		m := plan.Month{
			ID:      id,
			Name:    monthNames[id-1],
			Books:   plan.SlotNames{NT1: "Mateus", NT2: "Atos", AT1: "Gênesis", AT2: "Salmos"},
			Abbrevs: plan.SlotNames{NT1: "Mt", NT2: "At", AT1: "Gn", AT2: "Sl"},
		}
		for d := 1; d <= 25; d++ {
			m.Days = append(m.Days, plan.Day{D: d, NT1: "1", NT2: "1", AT1: "1", AT2: "1"})
		}
		doc.Months = append(doc.Months, m)
	}

	catalog, err := plan.New(doc)
	require.NoError(t, err)
	return NewEngine(catalog)
}

func daySet(days ...int) map[int]bool {
	set := make(map[int]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

func TestEngine_ComputeMonthStatus(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("fully on track", func(t *testing.T) {
		// June 2025: 30 calendar days, 25 plan days, margin 5.
		today := time.Date(2025, time.June, 5, 12, 0, 0, 0, time.UTC)
		status := engine.ComputeMonthStatus(6, daySet(1, 2, 3, 4, 5), today)

		assert.Equal(t, 6, status.Month)
		assert.Equal(t, "Junho", status.MonthName)
		assert.Equal(t, 5, status.ProgrammedDay)
		assert.Empty(t, status.PendingDays)
		assert.Equal(t, 0, status.DaysBehind)
		assert.Equal(t, 5, status.MarginTotal)
		assert.Equal(t, 5, status.MarginRemaining)
		assert.True(t, status.OnTrack)
		assert.True(t, status.CanCatchUp)
		assert.Equal(t, 6, status.RecommendedNextDay)
	})

	t.Run("behind with margin left", func(t *testing.T) {
		today := time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)
		status := engine.ComputeMonthStatus(6, daySet(1, 4), today)

		assert.Equal(t, []int{2, 3}, status.PendingDays)
		assert.Equal(t, 2, status.DaysBehind)
		assert.Equal(t, 3, status.MarginRemaining)
		assert.False(t, status.OnTrack)
		assert.True(t, status.CanCatchUp)
		assert.Equal(t, 2, status.RecommendedNextDay, "oldest pending day first")
	})

	t.Run("margin exhausted floors at zero", func(t *testing.T) {
		today := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
		status := engine.ComputeMonthStatus(6, daySet(), today)

		assert.Equal(t, 10, status.DaysBehind)
		assert.Equal(t, 0, status.MarginRemaining)
		assert.False(t, status.OnTrack)
		assert.True(t, status.CanCatchUp, "catch-up is never locked out")
		assert.Equal(t, 1, status.RecommendedNextDay)
	})

	t.Run("calendar day past plan range is capped", func(t *testing.T) {
		// June 28th: the plan only has 25 days, the rest is margin.
		today := time.Date(2025, time.June, 28, 12, 0, 0, 0, time.UTC)
		all := make([]int, 0, 25)
		for d := 1; d <= 25; d++ {
			all = append(all, d)
		}
		status := engine.ComputeMonthStatus(6, daySet(all...), today)

		assert.Equal(t, 25, status.ProgrammedDay)
		assert.Empty(t, status.PendingDays)
		assert.True(t, status.OnTrack)
		assert.Equal(t, 25, status.RecommendedNextDay)
	})

	t.Run("february non-leap has the smallest margin", func(t *testing.T) {
		today := time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)
		status := engine.ComputeMonthStatus(2, daySet(1), today)

		assert.Equal(t, "Fevereiro", status.MonthName)
		assert.Equal(t, 3, status.MarginTotal)
	})
}

func TestEngine_AdvanceStreak(t *testing.T) {
	engine := newTestEngine(t)
	june := func(day int) time.Time {
		return time.Date(2025, time.June, day, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name               string
		previousStreak     int
		month              int
		day                int
		completedDays      map[int]bool
		today              time.Time
		yesterdayCompleted bool
		want               int
	}{
		{
			name:           "consecutive day increments",
			previousStreak: 2,
			month:          6, day: 3,
			completedDays: daySet(1, 2, 3),
			today:         june(3),
			want:          3,
		},
		{
			name:           "first ever completion starts at one",
			previousStreak: 0,
			month:          6, day: 1,
			completedDays: daySet(1),
			today:         june(1),
			want:          1,
		},
		{
			name:           "day one continues across the month boundary",
			previousStreak: 10,
			month:          6, day: 1,
			completedDays:      daySet(1),
			today:              june(1),
			yesterdayCompleted: true,
			want:               11,
		},
		{
			name:           "day one without yesterday restarts",
			previousStreak: 10,
			month:          6, day: 1,
			completedDays:      daySet(1),
			today:              june(1),
			yesterdayCompleted: false,
			want:               1,
		},
		{
			name:           "gap absorbed by margin holds the streak",
			previousStreak: 1,
			month:          6, day: 4,
			completedDays: daySet(1, 4),
			today:         june(4),
			want:          1,
		},
		{
			name:           "single missed day holds a longer streak too",
			previousStreak: 3,
			month:          6, day: 5,
			completedDays: daySet(1, 2, 3, 5),
			today:         june(5),
			want:          3,
		},
		{
			name:           "gap with no previous streak restarts at one",
			previousStreak: 0,
			month:          6, day: 4,
			completedDays: daySet(4),
			today:         june(4),
			want:          1,
		},
		{
			name:           "gap beyond the margin restarts at one",
			previousStreak: 5,
			month:          2, day: 10,
			// February 2025: margin 3, nine pending days before today.
			completedDays: daySet(10),
			today:         time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC),
			want:          1,
		},
		{
			name:           "leap february absorbs one more day",
			previousStreak: 4,
			month:          2, day: 6,
			// February 2024: margin 4 still absorbs this gap.
			completedDays: daySet(2, 6),
			today:         time.Date(2024, time.February, 6, 12, 0, 0, 0, time.UTC),
			want:          4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.AdvanceStreak(tt.previousStreak, tt.month, tt.day, tt.completedDays, tt.today, tt.yesterdayCompleted)
			assert.Equal(t, tt.want, got)
		})
	}
}
