// internal/gamification/calculator.go
package gamification

import (
	"math"

	"github.com/RaczoOBY/bible-app/internal/plan"
)

// Calculator holds the pure XP/level rules. All values come from the plan
// catalog's gamification section; nothing here touches the database.
type Calculator struct {
	catalog *plan.Catalog
}

func NewCalculator(catalog *plan.Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// StreakMultiplier returns the XP multiplier for the given streak. Tiers are
// checked highest first; below the lowest tier the multiplier is 1.0.
func (c *Calculator) StreakMultiplier(streak int) float64 {
	m := c.catalog.Gamification().Multipliers
	switch {
	case streak >= 30:
		return m["30"]
	case streak >= 14:
		return m["14"]
	case streak >= 7:
		return m["7"]
	case streak >= 3:
		return m["3"]
	}
	return 1.0
}

// XPForReading is the XP awarded for completing a single reading slot.
func (c *Calculator) XPForReading(streak int) int {
	base := float64(c.catalog.Gamification().XPPerReading)
	return int(math.Round(base * c.StreakMultiplier(streak)))
}

// XPForDayCompletion is the bonus awarded when the toggle that just ran
// completed the fourth and last slot of a plan-day.
func (c *Calculator) XPForDayCompletion(streak int) int {
	base := float64(c.catalog.Gamification().XPDayComplete)
	return int(math.Round(base * c.StreakMultiplier(streak)))
}

// LevelForXP returns the level tier containing xp. The last tier is treated as
// unbounded above; if nothing matches (which the load-time validation should
// make impossible) the lowest tier is returned as a defensive default.
func (c *Calculator) LevelForXP(xp int) plan.Level {
	levels := c.catalog.Levels()
	for i, lvl := range levels {
		if i == len(levels)-1 {
			if xp >= lvl.XPMin {
				return lvl
			}
			break
		}
		if xp >= lvl.XPMin && xp <= lvl.XPMax {
			return lvl
		}
	}
	return levels[0]
}

// DidLevelUp reports whether moving from previousXP to newXP crossed into a
// higher level tier.
func (c *Calculator) DidLevelUp(previousXP, newXP int) bool {
	return c.LevelForXP(newXP).Level > c.LevelForXP(previousXP).Level
}

// XPToNextLevel is the XP total at which the next level begins. At the top
// tier it returns the tier's own xpMax, since there is nowhere further to go.
func (c *Calculator) XPToNextLevel(xp int) int {
	levels := c.catalog.Levels()
	current := c.LevelForXP(xp)
	if current.Level == levels[len(levels)-1].Level {
		return current.XPMax
	}
	return current.XPMax + 1
}
