// internal/repository/user_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/RaczoOBY/bible-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	// UpdateAggregate persists xp/level/streak fields guarded by the version
	// column. Returns model.ErrConflict when a concurrent transaction bumped
	// the version first; callers retry the whole toggle in that case.
	UpdateAggregate(ctx context.Context, tx *gorm.DB, user *model.User) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	return tx.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) UpdateAggregate(ctx context.Context, tx *gorm.DB, user *model.User) error {
	previousVersion := user.Version
	result := tx.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ? AND version = ?", user.UserID, previousVersion).
		Updates(map[string]interface{}{
			"xp":             user.XP,
			"level":          user.Level,
			"current_streak": user.CurrentStreak,
			"best_streak":    user.BestStreak,
			"version":        previousVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Someone else updated the aggregate between our read and this write.
		return model.ErrConflict
	}
	user.Version = previousVersion + 1
	return nil
}
