// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/RaczoOBY/bible-app/internal/gamification"
	"github.com/RaczoOBY/bible-app/internal/middleware"
	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/plan"
	"github.com/RaczoOBY/bible-app/internal/repository"
	"github.com/RaczoOBY/bible-app/internal/streak"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*model.ProgressSummary, error)
}

type progressService struct {
	db          *gorm.DB
	readingRepo repository.ReadingRepository
	userRepo    repository.UserRepository
	catalog     *plan.Catalog
	calc        *gamification.Calculator
	engine      *streak.Engine
	now         func() time.Time
}

func NewProgressService(
	db *gorm.DB,
	readingRepo repository.ReadingRepository,
	userRepo repository.UserRepository,
	catalog *plan.Catalog,
	calc *gamification.Calculator,
	engine *streak.Engine,
) ProgressService {
	return &progressService{
		db:          db,
		readingRepo: readingRepo,
		userRepo:    userRepo,
		catalog:     catalog,
		calc:        calc,
		engine:      engine,
		now:         time.Now,
	}
}

func (s *progressService) GetSummary(ctx context.Context, userID uuid.UUID) (*model.ProgressSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "Usuário não encontrado.", "", model.ErrUserNotFound)
		}
		logger.Error("Error loading user aggregate", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar o usuário.", "", err)
	}

	readings, err := s.readingRepo.FindAllCompleted(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error loading completed readings", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar as leituras.", "", err)
	}

	// A plan-day only counts as completed with all four slots done.
	slotsPerDay := make(map[int]map[int]int)
	for _, r := range readings {
		if slotsPerDay[r.Month] == nil {
			slotsPerDay[r.Month] = make(map[int]int)
		}
		slotsPerDay[r.Month][r.Day]++
	}
	completedByMonth := make(map[int][]int)
	totalCompleted := 0
	for month, days := range slotsPerDay {
		for day, count := range days {
			if count >= len(model.Slots) {
				completedByMonth[month] = append(completedByMonth[month], day)
				totalCompleted++
			}
		}
	}
	for month := range completedByMonth {
		sort.Ints(completedByMonth[month])
	}

	totalDays := s.catalog.TotalDays()
	daysPerMonth := s.catalog.DaysPerPlanMonth()

	perMonth := make([]model.MonthProgress, 0, len(s.catalog.Months()))
	for _, m := range s.catalog.Months() {
		completed := completedByMonth[m.ID]
		if completed == nil {
			completed = []int{}
		}
		perMonth = append(perMonth, model.MonthProgress{
			Month:         m.ID,
			Name:          m.Name,
			CompletedDays: completed,
			TotalDays:     daysPerMonth,
			Percent:       roundPercent(float64(len(completed)) / float64(daysPerMonth) * 100),
		})
	}

	today := s.now()
	currentMonth := int(today.Month())
	currentSet := make(map[int]bool, len(completedByMonth[currentMonth]))
	for _, d := range completedByMonth[currentMonth] {
		currentSet[d] = true
	}
	status := s.engine.ComputeMonthStatus(currentMonth, currentSet, today)
	status.TodayComplete = currentSet[today.Day()]

	level := s.calc.LevelForXP(user.XP)

	return &model.ProgressSummary{
		TotalDays:     totalDays,
		CompletedDays: totalCompleted,
		Percent:       roundPercent(float64(totalCompleted) / float64(totalDays) * 100),
		PerMonth:      perMonth,
		CurrentStreak: user.CurrentStreak,
		BestStreak:    user.BestStreak,
		XP:            user.XP,
		Level:         level.Level,
		LevelName:     level.Name,
		LevelIcon:     level.Icon,
		XPToNextLevel: s.calc.XPToNextLevel(user.XP),
		CurrentMonth:  status,
	}, nil
}

func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
