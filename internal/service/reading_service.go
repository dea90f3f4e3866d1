// internal/service/reading_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RaczoOBY/bible-app/internal/config"
	"github.com/RaczoOBY/bible-app/internal/gamification"
	"github.com/RaczoOBY/bible-app/internal/middleware"
	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/plan"
	"github.com/RaczoOBY/bible-app/internal/repository"
	"github.com/RaczoOBY/bible-app/internal/streak"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// streakThresholds are the streak values that trigger a milestone achievement.
// Each fires on exact equality: the streak moves by at most one per completed
// day, so no value is ever skipped.
var streakThresholds = []int{3, 7, 14, 30, 100}

type ReadingService interface {
	// ToggleReading runs the whole completion transaction: upserts the slot
	// record, recomputes day completion, advances the streak, evaluates
	// achievements and persists the user aggregate atomically.
	ToggleReading(ctx context.Context, userID uuid.UUID, req *model.ToggleReadingRequest) (*model.ToggleReadingResponse, error)
	GetDayReadings(ctx context.Context, userID uuid.UUID, month, day int) (*model.DayReadingsResponse, error)
}

type readingService struct {
	db              *gorm.DB
	readingRepo     repository.ReadingRepository
	userRepo        repository.UserRepository
	achievementRepo repository.AchievementRepository
	catalog         *plan.Catalog
	calc            *gamification.Calculator
	engine          *streak.Engine
	cfg             *config.Config
	now             func() time.Time
}

func NewReadingService(
	db *gorm.DB,
	readingRepo repository.ReadingRepository,
	userRepo repository.UserRepository,
	achievementRepo repository.AchievementRepository,
	catalog *plan.Catalog,
	calc *gamification.Calculator,
	engine *streak.Engine,
	cfg *config.Config,
) ReadingService {
	return &readingService{
		db:              db,
		readingRepo:     readingRepo,
		userRepo:        userRepo,
		achievementRepo: achievementRepo,
		catalog:         catalog,
		calc:            calc,
		engine:          engine,
		cfg:             cfg,
		now:             time.Now,
	}
}

func (s *readingService) ToggleReading(ctx context.Context, userID uuid.UUID, req *model.ToggleReadingRequest) (*model.ToggleReadingResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "month", req.Month, "day", req.Day, "slot", req.Slot)

	// Validate the plan reference before touching any state.
	if _, err := s.catalog.ReadingsForDay(req.Month, req.Day); err != nil {
		logger.Warn("Toggle rejected, day not in plan")
		return nil, model.NewAppError("PLAN_NOT_FOUND", "Dia de leitura não existe no plano.", "", model.ErrNotFound)
	}

	completed := *req.Completed
	resp := &model.ToggleReadingResponse{UnlockedAchievements: []string{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := s.now()

		// Remember the slot's previous state: a redundant completion toggle
		// still awards the single-reading XP (original behavior, kept) but
		// must not re-run the day-completion branch.
		previousReadings, err := s.readingRepo.FindByDay(ctx, tx, userID, req.Month, req.Day)
		if err != nil {
			logger.Error("Error loading existing day readings", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar as leituras do dia.", "", err)
		}
		slotWasCompleted := false
		for _, reading := range previousReadings {
			if reading.Slot == req.Slot {
				slotWasCompleted = reading.Completed
			}
		}

		if _, err := s.readingRepo.Upsert(ctx, tx, userID, req.Month, req.Day, req.Slot, completed, now); err != nil {
			logger.Error("Error upserting reading record", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao registrar a leitura.", "", err)
		}

		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("User aggregate not found for toggle")
				return model.NewAppError("USER_NOT_FOUND", "Usuário não encontrado.", "", model.ErrUserNotFound)
			}
			logger.Error("Error loading user aggregate", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar o usuário.", "", err)
		}

		if !completed {
			// Un-marking only costs a flat XP penalty. Streak and unlocked
			// achievements stay as they are (inherited behavior, see DESIGN).
			newXP := user.XP - s.cfg.App.UnmarkPenaltyXP
			if newXP < 0 {
				newXP = 0
			}
			user.XP = newXP
			user.Level = s.calc.LevelForXP(newXP).Level
			return s.persistAggregate(ctx, tx, logger, user)
		}

		// XP for the single reading is awarded on every completion toggle,
		// even a redundant one. Matches the original behavior.
		xpGained := s.calc.XPForReading(user.CurrentStreak)

		dayReadings, err := s.readingRepo.FindByDay(ctx, tx, userID, req.Month, req.Day)
		if err != nil {
			logger.Error("Error reloading day readings", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar as leituras do dia.", "", err)
		}
		completedSlots := 0
		for _, reading := range dayReadings {
			if reading.Completed {
				completedSlots++
			}
		}

		if completedSlots == len(model.Slots) && !slotWasCompleted {
			// This toggle completed the day: bonus, streak, achievements.
			xpGained += s.calc.XPForDayCompletion(user.CurrentStreak)

			completedDays, err := s.readingRepo.FindCompletedDayNumbers(ctx, tx, userID, req.Month)
			if err != nil {
				logger.Error("Error loading completed day set", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao calcular os dias completos.", "", err)
			}
			completedDays[req.Day] = true

			yesterdayCompleted := false
			if req.Day == 1 {
				yesterday := now.AddDate(0, 0, -1)
				yesterdayCompleted, err = s.readingRepo.HasCompletedReading(ctx, tx, userID, int(yesterday.Month()), yesterday.Day())
				if err != nil {
					logger.Error("Error checking yesterday's reading", "error", err)
					return model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao verificar o dia anterior.", "", err)
				}
			}

			newStreak := s.engine.AdvanceStreak(user.CurrentStreak, req.Month, req.Day, completedDays, now, yesterdayCompleted)
			logger.Info("Day completed", "previous_streak", user.CurrentStreak, "new_streak", newStreak)

			unlockedXP, unlockedCodes, err := s.unlockStreakAchievements(ctx, tx, logger, userID, newStreak, now)
			if err != nil {
				return err
			}
			xpGained += unlockedXP
			resp.UnlockedAchievements = append(resp.UnlockedAchievements, unlockedCodes...)

			user.CurrentStreak = newStreak
			if newStreak > user.BestStreak {
				user.BestStreak = newStreak
			}
		}

		previousXP := user.XP
		user.XP = previousXP + xpGained
		user.Level = s.calc.LevelForXP(user.XP).Level

		resp.XPGained = xpGained
		resp.LevelUp = s.calc.DidLevelUp(previousXP, user.XP)

		return s.persistAggregate(ctx, tx, logger, user)
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// unlockStreakAchievements grants the achievements newly reached by the
// streak value. Unlocks are idempotent: anything already in the unlock table
// is silently skipped, awarding no XP twice.
func (s *readingService) unlockStreakAchievements(ctx context.Context, tx *gorm.DB, logger *slog.Logger, userID uuid.UUID, newStreak int, now time.Time) (int, []string, error) {
	var codes []string
	if newStreak == 1 {
		codes = append(codes, "primeiro_dia")
	}
	for _, threshold := range streakThresholds {
		if newStreak == threshold {
			codes = append(codes, fmt.Sprintf("seq_%d", threshold))
		}
	}

	xp := 0
	unlocked := make([]string, 0, len(codes))
	for _, code := range codes {
		achievement, err := s.achievementRepo.FindByCode(ctx, tx, code)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				// Catalog row missing; nothing to grant.
				continue
			}
			logger.Error("Error loading achievement", "code", code, "error", err)
			return 0, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar a conquista.", "", err)
		}

		_, err = s.achievementRepo.FindUnlock(ctx, tx, userID, achievement.AchievementID)
		if err == nil {
			continue // already unlocked
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error checking achievement unlock", "code", code, "error", err)
			return 0, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao verificar a conquista.", "", err)
		}

		unlock := &model.UserAchievement{
			UserAchievementID: uuid.New(),
			UserID:            userID,
			AchievementID:     achievement.AchievementID,
			UnlockedAt:        now,
			TimesObtained:     1,
		}
		if err := s.achievementRepo.CreateUnlock(ctx, tx, unlock); err != nil {
			logger.Error("Error creating achievement unlock", "code", code, "error", err)
			return 0, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao desbloquear a conquista.", "", err)
		}

		logger.Info("Achievement unlocked", "code", code, "xp", achievement.XP)
		xp += achievement.XP
		unlocked = append(unlocked, code)
	}
	return xp, unlocked, nil
}

func (s *readingService) persistAggregate(ctx context.Context, tx *gorm.DB, logger *slog.Logger, user *model.User) error {
	if err := s.userRepo.UpdateAggregate(ctx, tx, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Concurrent aggregate update detected")
			return model.NewAppError("CONCURRENT_UPDATE", "O progresso foi atualizado por outra operação. Tente novamente.", "", model.ErrConflict)
		}
		logger.Error("Error persisting user aggregate", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao salvar o progresso.", "", err)
	}
	return nil
}

func (s *readingService) GetDayReadings(ctx context.Context, userID uuid.UUID, month, day int) (*model.DayReadingsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "month", month, "day", day)

	assignments, err := s.catalog.ReadingsForDay(month, day)
	if err != nil {
		return nil, model.NewAppError("PLAN_NOT_FOUND", "Dia de leitura não existe no plano.", "", model.ErrNotFound)
	}

	readings, err := s.readingRepo.FindByDay(ctx, s.db, userID, month, day)
	if err != nil {
		logger.Error("Error loading readings for day", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar as leituras do dia.", "", err)
	}
	completedBySlot := make(map[model.Slot]bool, len(readings))
	for _, r := range readings {
		completedBySlot[r.Slot] = r.Completed
	}

	resp := &model.DayReadingsResponse{
		Month:    month,
		Day:      day,
		Readings: make([]model.DayReading, 0, len(assignments)),
	}
	for _, a := range assignments {
		resp.Readings = append(resp.Readings, model.DayReading{
			Slot:      a.Slot,
			Book:      a.Book,
			Abbrev:    a.Abbrev,
			Reference: a.Reference,
			Completed: completedBySlot[a.Slot],
		})
	}
	return resp, nil
}
