// internal/service/achievement_service.go
package service

import (
	"context"

	"github.com/RaczoOBY/bible-app/internal/middleware"
	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/plan"
	"github.com/RaczoOBY/bible-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementService interface {
	// ListForUser returns the whole catalog in plan order, each entry marked
	// with the caller's unlock state.
	ListForUser(ctx context.Context, userID uuid.UUID) (*model.AchievementsResponse, error)
}

type achievementService struct {
	db              *gorm.DB
	achievementRepo repository.AchievementRepository
	catalog         *plan.Catalog
}

func NewAchievementService(db *gorm.DB, achievementRepo repository.AchievementRepository, catalog *plan.Catalog) AchievementService {
	return &achievementService{
		db:              db,
		achievementRepo: achievementRepo,
		catalog:         catalog,
	}
}

func (s *achievementService) ListForUser(ctx context.Context, userID uuid.UUID) (*model.AchievementsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	rows, err := s.achievementRepo.ListAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing achievements", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar as conquistas.", "", err)
	}
	byCode := make(map[string]*model.Achievement, len(rows))
	for _, a := range rows {
		byCode[a.Code] = a
	}

	unlocks, err := s.achievementRepo.ListUnlocksByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing achievement unlocks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Falha ao carregar as conquistas do usuário.", "", err)
	}
	unlockByID := make(map[uuid.UUID]*model.UserAchievement, len(unlocks))
	for _, u := range unlocks {
		unlockByID[u.AchievementID] = u
	}

	resp := &model.AchievementsResponse{
		Achievements: make([]model.AchievementStatus, 0, len(s.catalog.AchievementDefs())),
	}
	for _, def := range s.catalog.AchievementDefs() {
		row, ok := byCode[def.ID]
		if !ok {
			// Definition not synced into the database yet; show it locked.
			resp.Achievements = append(resp.Achievements, model.AchievementStatus{
				Code:        def.ID,
				Name:        def.Name,
				Description: def.Desc,
				XP:          def.XP,
				Icon:        def.Icon,
			})
			continue
		}
		status := model.AchievementStatus{
			Code:        row.Code,
			Name:        row.Name,
			Description: row.Description,
			XP:          row.XP,
			Icon:        row.Icon,
			Category:    row.Category,
		}
		if unlock, found := unlockByID[row.AchievementID]; found {
			status.Unlocked = true
			unlockedAt := unlock.UnlockedAt
			status.UnlockedAt = &unlockedAt
			status.TimesObtained = unlock.TimesObtained
			resp.Unlocked++
		}
		resp.Achievements = append(resp.Achievements, status)
	}
	resp.Total = len(resp.Achievements)

	return resp, nil
}
