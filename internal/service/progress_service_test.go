// internal/service/progress_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/RaczoOBY/bible-app/internal/gamification"
	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/repository"
	"github.com/RaczoOBY/bible-app/internal/streak"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_progressService_GetSummary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReading(t)
	catalog := loadTestCatalog(t)

	svc := NewProgressService(
		db,
		repository.NewGormReadingRepository(),
		repository.NewGormUserRepository(),
		catalog,
		gamification.NewCalculator(catalog),
		streak.NewEngine(catalog),
	).(*progressService)
	svc.now = func() time.Time { return time.Date(2025, time.June, 4, 8, 0, 0, 0, time.UTC) }

	user := createTestUser(t, db, 310, 3, 4, 6)
	seededAt := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	// January day 1 and June days 1-3 fully complete; June day 4 half done.
	seedCompletedDay(t, db, user.UserID, 1, 1, model.Slots, seededAt)
	for day := 1; day <= 3; day++ {
		seedCompletedDay(t, db, user.UserID, 6, day, model.Slots, seededAt)
	}
	seedCompletedDay(t, db, user.UserID, 6, 4, model.Slots[:2], seededAt)

	summary, err := svc.GetSummary(ctx, user.UserID)
	require.NoError(t, err)

	assert.Equal(t, 300, summary.TotalDays)
	assert.Equal(t, 4, summary.CompletedDays, "half-done days do not count")
	assert.InDelta(t, 1.33, summary.Percent, 0.001)

	require.Len(t, summary.PerMonth, 12)
	january := summary.PerMonth[0]
	assert.Equal(t, 1, january.Month)
	assert.Equal(t, "Janeiro", january.Name)
	assert.Equal(t, []int{1}, january.CompletedDays)
	assert.InDelta(t, 4.0, january.Percent, 0.001)

	june := summary.PerMonth[5]
	assert.Equal(t, []int{1, 2, 3}, june.CompletedDays)
	assert.InDelta(t, 12.0, june.Percent, 0.001)

	february := summary.PerMonth[1]
	assert.Empty(t, february.CompletedDays)
	assert.Zero(t, february.Percent)

	assert.Equal(t, 4, summary.CurrentStreak)
	assert.Equal(t, 6, summary.BestStreak)
	assert.Equal(t, 310, summary.XP)
	assert.Equal(t, 3, summary.Level)
	assert.Equal(t, "Árvore Jovem", summary.LevelName)
	assert.Equal(t, 600, summary.XPToNextLevel)

	status := summary.CurrentMonth
	assert.Equal(t, 6, status.Month)
	assert.Equal(t, "Junho", status.MonthName)
	assert.Equal(t, 4, status.ProgrammedDay)
	assert.Equal(t, []int{4}, status.PendingDays)
	assert.Equal(t, 1, status.DaysBehind)
	assert.Equal(t, 5, status.MarginTotal)
	assert.Equal(t, 4, status.MarginRemaining)
	assert.False(t, status.OnTrack)
	assert.True(t, status.CanCatchUp)
	assert.Equal(t, 4, status.RecommendedNextDay)
	assert.False(t, status.TodayComplete)
}

func Test_progressService_GetSummary_EmptyUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReading(t)
	catalog := loadTestCatalog(t)

	svc := NewProgressService(
		db,
		repository.NewGormReadingRepository(),
		repository.NewGormUserRepository(),
		catalog,
		gamification.NewCalculator(catalog),
		streak.NewEngine(catalog),
	).(*progressService)
	svc.now = func() time.Time { return time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC) }

	user := createTestUser(t, db, 0, 1, 0, 0)

	summary, err := svc.GetSummary(ctx, user.UserID)
	require.NoError(t, err)

	assert.Zero(t, summary.CompletedDays)
	assert.Zero(t, summary.Percent)
	assert.Equal(t, 1, summary.Level)
	assert.Equal(t, "Semente", summary.LevelName)
	assert.Equal(t, 100, summary.XPToNextLevel)
	assert.Equal(t, []int{1}, summary.CurrentMonth.PendingDays)
	assert.True(t, summary.CurrentMonth.CanCatchUp)
}

func Test_progressService_GetSummary_UserNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReading(t)
	catalog := loadTestCatalog(t)

	svc := NewProgressService(
		db,
		repository.NewGormReadingRepository(),
		repository.NewGormUserRepository(),
		catalog,
		gamification.NewCalculator(catalog),
		streak.NewEngine(catalog),
	)

	_, err := svc.GetSummary(ctx, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
