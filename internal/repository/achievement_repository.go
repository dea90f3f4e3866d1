// internal/repository/achievement_repository.go
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/plan"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	ListAll(ctx context.Context, db *gorm.DB) ([]*model.Achievement, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Achievement, error)
	FindUnlock(ctx context.Context, db *gorm.DB, userID, achievementID uuid.UUID) (*model.UserAchievement, error)
	CreateUnlock(ctx context.Context, tx *gorm.DB, unlock *model.UserAchievement) error
	ListUnlocksByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserAchievement, error)
	// SyncDefinitions upserts the static catalog from the plan document,
	// keyed by code. Run once at startup.
	SyncDefinitions(ctx context.Context, db *gorm.DB, defs []plan.AchievementDef) error
}

type gormAchievementRepository struct{}

func NewGormAchievementRepository() AchievementRepository {
	return &gormAchievementRepository{}
}

func (r *gormAchievementRepository) ListAll(ctx context.Context, db *gorm.DB) ([]*model.Achievement, error) {
	var achievements []*model.Achievement
	result := db.WithContext(ctx).Order("created_at ASC").Find(&achievements)
	if result.Error != nil {
		return nil, result.Error
	}
	return achievements, nil
}

func (r *gormAchievementRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Achievement, error) {
	var achievement model.Achievement
	result := db.WithContext(ctx).Where("code = ?", code).First(&achievement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &achievement, nil
}

func (r *gormAchievementRepository) FindUnlock(ctx context.Context, db *gorm.DB, userID, achievementID uuid.UUID) (*model.UserAchievement, error) {
	var unlock model.UserAchievement
	result := db.WithContext(ctx).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(&unlock)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &unlock, nil
}

func (r *gormAchievementRepository) CreateUnlock(ctx context.Context, tx *gorm.DB, unlock *model.UserAchievement) error {
	return tx.WithContext(ctx).Create(unlock).Error
}

func (r *gormAchievementRepository) ListUnlocksByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserAchievement, error) {
	var unlocks []*model.UserAchievement
	result := db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Find(&unlocks)
	if result.Error != nil {
		return nil, result.Error
	}
	return unlocks, nil
}

func (r *gormAchievementRepository) SyncDefinitions(ctx context.Context, db *gorm.DB, defs []plan.AchievementDef) error {
	now := time.Now()
	for _, def := range defs {
		var existing model.Achievement
		err := db.WithContext(ctx).Where("code = ?", def.ID).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			achievement := model.Achievement{
				AchievementID: uuid.New(),
				Code:          def.ID,
				Name:          def.Name,
				Description:   def.Desc,
				XP:            def.XP,
				Icon:          def.Icon,
				Category:      categoryForCode(def.ID),
				CreatedAt:     now,
			}
			if createErr := db.WithContext(ctx).Create(&achievement).Error; createErr != nil {
				return createErr
			}
			continue
		}
		existing.Name = def.Name
		existing.Description = def.Desc
		existing.XP = def.XP
		existing.Icon = def.Icon
		existing.Category = categoryForCode(def.ID)
		if saveErr := db.WithContext(ctx).Save(&existing).Error; saveErr != nil {
			return saveErr
		}
	}
	return nil
}

func categoryForCode(code string) model.AchievementCategory {
	switch {
	case strings.HasPrefix(code, "seq_"):
		return model.CategoryStreak
	case code == "mes_perfeito":
		return model.CategoryMonthly
	case code == "primeiro_dia":
		return model.CategorySpecial
	default:
		return model.CategoryBook
	}
}
