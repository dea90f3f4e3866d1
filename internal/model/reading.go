// internal/model/reading.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Slot identifies one of the four independent reading assignments of a
// plan-day: two New Testament and two Old Testament references.
type Slot string

const (
	SlotNT1 Slot = "nt1"
	SlotNT2 Slot = "nt2"
	SlotAT1 Slot = "at1"
	SlotAT2 Slot = "at2"
)

// Slots lists all four slots in display order.
var Slots = []Slot{SlotNT1, SlotNT2, SlotAT1, SlotAT2}

func (s Slot) IsValid() bool {
	switch s {
	case SlotNT1, SlotNT2, SlotAT1, SlotAT2:
		return true
	}
	return false
}

// Reading is one slot of one plan-day for one user. Rows are upserted on the
// first toggle and mutated afterwards; un-marking sets Completed to false
// instead of deleting the row.
type Reading struct {
	ReadingID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"reading_id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_month_day_slot,unique" json:"-"`
	Month       int        `gorm:"not null;index:idx_user_month_day_slot,unique" json:"month"`
	Day         int        `gorm:"not null;index:idx_user_month_day_slot,unique" json:"day"`
	Slot        Slot       `gorm:"type:varchar(8);not null;index:idx_user_month_day_slot,unique" json:"slot"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Reading) TableName() string {
	return "readings"
}

// ToggleReadingRequest is the body of POST /readings/toggle.
// Completed is a pointer so "false" and "missing" can be told apart.
// Day's upper bound comes from the plan catalog, not the tag; days outside
// the plan are rejected by the catalog lookup.
type ToggleReadingRequest struct {
	Month     int   `json:"month" validate:"required,min=1,max=12"`
	Day       int   `json:"day" validate:"required,min=1"`
	Slot      Slot  `json:"slot" validate:"required,oneof=nt1 nt2 at1 at2"`
	Completed *bool `json:"completed" validate:"required"`
}

// ToggleReadingResponse is the delta produced by one toggle transaction.
type ToggleReadingResponse struct {
	XPGained             int      `json:"xpGained"`
	LevelUp              bool     `json:"levelUp"`
	UnlockedAchievements []string `json:"unlockedAchievements"`
}

// DayReading is one slot of a plan-day merged with the caller's completion
// state, as returned by GET /readings/day.
type DayReading struct {
	Slot      Slot   `json:"slot"`
	Book      string `json:"book"`
	Abbrev    string `json:"abbrev"`
	Reference string `json:"reference"`
	Completed bool   `json:"completed"`
}

type DayReadingsResponse struct {
	Month    int          `json:"month"`
	Day      int          `json:"day"`
	Readings []DayReading `json:"readings"`
}
