// internal/model/achievement.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AchievementCategory groups achievements for presentation.
type AchievementCategory string

const (
	CategoryStreak  AchievementCategory = "streak"
	CategoryBook    AchievementCategory = "book"
	CategoryMonthly AchievementCategory = "monthly"
	CategorySpecial AchievementCategory = "special"
)

// Achievement is one entry of the static achievement catalog, synced into the
// database from the plan document at startup.
type Achievement struct {
	AchievementID uuid.UUID           `gorm:"type:uuid;primaryKey" json:"-"`
	Code          string              `gorm:"unique;not null" json:"id"`
	Name          string              `gorm:"not null" json:"name"`
	Description   string              `gorm:"not null" json:"description"`
	XP            int                 `gorm:"not null" json:"xp"`
	Icon          string              `json:"icon"`
	Category      AchievementCategory `gorm:"type:varchar(16);not null" json:"category"`
	CreatedAt     time.Time           `json:"-"`
	UpdatedAt     time.Time           `json:"-"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement records a one-time unlock. The unique pair index makes the
// idempotent-unlock check enforceable at the database level too.
type UserAchievement struct {
	UserAchievementID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index:idx_user_achievement,unique" json:"-"`
	AchievementID     uuid.UUID `gorm:"type:uuid;not null;index:idx_user_achievement,unique" json:"-"`
	UnlockedAt        time.Time `gorm:"not null" json:"unlocked_at"`
	TimesObtained     int       `gorm:"not null;default:1" json:"times_obtained"`

	Achievement *Achievement `gorm:"foreignKey:AchievementID;references:AchievementID" json:"-"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}

// AchievementStatus is one catalog entry with the caller's unlock state.
type AchievementStatus struct {
	Code          string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	XP            int                 `json:"xp"`
	Icon          string              `json:"icon"`
	Category      AchievementCategory `json:"category"`
	Unlocked      bool                `json:"unlocked"`
	UnlockedAt    *time.Time          `json:"unlocked_at,omitempty"`
	TimesObtained int                 `json:"times_obtained"`
}

type AchievementsResponse struct {
	Achievements []AchievementStatus `json:"achievements"`
	Total        int                 `json:"total"`
	Unlocked     int                 `json:"unlocked"`
}
