// internal/repository/reading_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RaczoOBY/bible-app/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReadingRepository interface {
	// Upsert creates or updates the record for (user, month, day, slot),
	// returning it. Rows are never deleted; un-marking clears the flag.
	Upsert(ctx context.Context, tx *gorm.DB, userID uuid.UUID, month, day int, slot model.Slot, completed bool, now time.Time) (*model.Reading, error)
	FindByDay(ctx context.Context, db *gorm.DB, userID uuid.UUID, month, day int) ([]*model.Reading, error)
	FindAllCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Reading, error)
	// FindCompletedDayNumbers returns the plan-days of a month for which all
	// four slots are complete.
	FindCompletedDayNumbers(ctx context.Context, db *gorm.DB, userID uuid.UUID, month int) (map[int]bool, error)
	// HasCompletedReading reports whether any slot of (month, day) is
	// complete. Used for the cross-month yesterday check on day 1.
	HasCompletedReading(ctx context.Context, db *gorm.DB, userID uuid.UUID, month, day int) (bool, error)
}

type gormReadingRepository struct{}

func NewGormReadingRepository() ReadingRepository {
	return &gormReadingRepository{}
}

func (r *gormReadingRepository) Upsert(ctx context.Context, tx *gorm.DB, userID uuid.UUID, month, day int, slot model.Slot, completed bool, now time.Time) (*model.Reading, error) {
	var reading model.Reading
	err := tx.WithContext(ctx).
		Where("user_id = ? AND month = ? AND day = ? AND slot = ?", userID, month, day, slot).
		First(&reading).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var completedAt *time.Time
	if completed {
		completedAt = &now
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		reading = model.Reading{
			ReadingID:   uuid.New(),
			UserID:      userID,
			Month:       month,
			Day:         day,
			Slot:        slot,
			Completed:   completed,
			CompletedAt: completedAt,
		}
		if createErr := tx.WithContext(ctx).Create(&reading).Error; createErr != nil {
			return nil, createErr
		}
		return &reading, nil
	}

	reading.Completed = completed
	reading.CompletedAt = completedAt
	if saveErr := tx.WithContext(ctx).Save(&reading).Error; saveErr != nil {
		return nil, saveErr
	}
	return &reading, nil
}

func (r *gormReadingRepository) FindByDay(ctx context.Context, db *gorm.DB, userID uuid.UUID, month, day int) ([]*model.Reading, error) {
	var readings []*model.Reading
	result := db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND day = ?", userID, month, day).
		Find(&readings)
	if result.Error != nil {
		return nil, result.Error
	}
	return readings, nil
}

func (r *gormReadingRepository) FindAllCompleted(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Reading, error) {
	var readings []*model.Reading
	result := db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, true).
		Find(&readings)
	if result.Error != nil {
		return nil, result.Error
	}
	return readings, nil
}

func (r *gormReadingRepository) FindCompletedDayNumbers(ctx context.Context, db *gorm.DB, userID uuid.UUID, month int) (map[int]bool, error) {
	type dayCount struct {
		Day   int
		Count int
	}
	var rows []dayCount
	result := db.WithContext(ctx).
		Model(&model.Reading{}).
		Select("day, count(*) as count").
		Where("user_id = ? AND month = ? AND completed = ?", userID, month, true).
		Group("day").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	days := make(map[int]bool, len(rows))
	for _, row := range rows {
		if row.Count >= len(model.Slots) {
			days[row.Day] = true
		}
	}
	return days, nil
}

func (r *gormReadingRepository) HasCompletedReading(ctx context.Context, db *gorm.DB, userID uuid.UUID, month, day int) (bool, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Reading{}).
		Where("user_id = ? AND month = ? AND day = ? AND completed = ?", userID, month, day, true).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
