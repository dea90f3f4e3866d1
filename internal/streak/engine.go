// internal/streak/engine.go
package streak

import (
	"time"

	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/plan"
)

// Engine reconciles the 25-day reading plan against 28-31 day calendar months.
// The plan deliberately under-provisions days so that every month carries a
// margin of skippable days; the engine decides whether a user is on track,
// how much margin is left, and how a completed day moves the streak.
//
// All methods are pure: callers load the completed-day set and pass it in.
type Engine struct {
	catalog *plan.Catalog
}

func NewEngine(catalog *plan.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// ComputeMonthStatus derives the month picture as of today. completedDays
// holds the plan-days of the month for which all four slots are complete.
func (e *Engine) ComputeMonthStatus(month int, completedDays map[int]bool, today time.Time) model.MonthStatus {
	daysPerMonth := e.catalog.DaysPerPlanMonth()

	programmedDay := today.Day()
	if programmedDay > daysPerMonth {
		programmedDay = daysPerMonth
	}

	pendingDays := make([]int, 0)
	for d := 1; d <= programmedDay; d++ {
		if !completedDays[d] {
			pendingDays = append(pendingDays, d)
		}
	}
	daysBehind := len(pendingDays)

	marginTotal := e.catalog.MarginForCalendarMonth(month, today.Year())
	marginRemaining := marginTotal - daysBehind
	if marginRemaining < 0 {
		marginRemaining = 0
	}

	recommended := daysPerMonth
	if len(pendingDays) > 0 {
		recommended = pendingDays[0]
	} else if programmedDay+1 < daysPerMonth {
		recommended = programmedDay + 1
	}

	status := model.MonthStatus{
		Month:              month,
		ProgrammedDay:      programmedDay,
		PendingDays:        pendingDays,
		DaysBehind:         daysBehind,
		MarginTotal:        marginTotal,
		MarginRemaining:    marginRemaining,
		OnTrack:            daysBehind == 0,
		CanCatchUp:         true, // catch-up is never locked out
		RecommendedNextDay: recommended,
	}
	if m, ok := e.catalog.Month(month); ok {
		status.MonthName = m.Name
	}
	return status
}

// AdvanceStreak computes the streak transition when a plan-day becomes fully
// complete. completedDays must already include the day just completed.
//
// A skipped day does not reset the streak while the month's margin can still
// absorb the gap; the streak is simply held. Once the gap exceeds the margin
// the streak restarts at 1, counting the just-completed day; a completion
// event never drops the streak to 0.
//
// For day 1 the previous plan-day lives in the previous month, so the caller
// resolves it: yesterdayCompleted reports whether the last calendar day has a
// completed reading record.
func (e *Engine) AdvanceStreak(previousStreak, month, day int, completedDays map[int]bool, today time.Time, yesterdayCompleted bool) int {
	if day == 1 {
		if yesterdayCompleted {
			return previousStreak + 1
		}
		return 1
	}

	if completedDays[day-1] {
		return previousStreak + 1
	}

	// Gap: see whether the month's margin absorbs it. The just-completed day
	// is not counted against the margin.
	daysPerMonth := e.catalog.DaysPerPlanMonth()
	programmedDay := today.Day()
	if programmedDay > daysPerMonth {
		programmedDay = daysPerMonth
	}
	daysBehind := 0
	for d := 1; d <= programmedDay; d++ {
		if !completedDays[d] {
			daysBehind++
		}
	}
	behindBeyondToday := daysBehind - 1
	if behindBeyondToday < 0 {
		behindBeyondToday = 0
	}
	marginAvailable := e.catalog.MarginForCalendarMonth(month, today.Year()) - behindBeyondToday

	if marginAvailable > 0 && previousStreak > 0 {
		return previousStreak
	}
	// Either the gap exceeds the margin or there was no streak to preserve;
	// both cases start over at 1.
	return 1
}
