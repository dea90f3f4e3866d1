// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the per-user progress aggregate: cumulative XP, derived level and the
// streak counters. Level is always recomputed from XP on every mutation, never
// updated on its own. Version backs the optimistic-concurrency check on
// aggregate updates.
type User struct {
	UserID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	XP            int            `gorm:"not null;default:0" json:"xp"`
	Level         int            `gorm:"not null;default:1" json:"level"`
	CurrentStreak int            `gorm:"not null;default:0" json:"current_streak"`
	BestStreak    int            `gorm:"not null;default:0" json:"best_streak"`
	Version       int64          `gorm:"not null;default:0" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)
