// internal/model/progress.go
package model

// MonthStatus is the derived catch-up picture of one month. It is always
// recomputed from the reading records plus today's date, never stored.
type MonthStatus struct {
	Month              int    `json:"month"`
	MonthName          string `json:"monthName"`
	ProgrammedDay      int    `json:"programmedDay"`
	PendingDays        []int  `json:"pendingDays"`
	DaysBehind         int    `json:"daysBehind"`
	MarginTotal        int    `json:"marginTotal"`
	MarginRemaining    int    `json:"marginRemaining"`
	OnTrack            bool   `json:"onTrack"`
	CanCatchUp         bool   `json:"canCatchUp"`
	RecommendedNextDay int    `json:"recommendedNextDay"`
	TodayComplete      bool   `json:"todayComplete"`
}

// MonthProgress summarizes one month for the progress view.
type MonthProgress struct {
	Month         int     `json:"month"`
	Name          string  `json:"name"`
	CompletedDays []int   `json:"completedDays"`
	TotalDays     int     `json:"totalDays"`
	Percent       float64 `json:"percent"`
}

// ProgressSummary is the payload of GET /progress.
type ProgressSummary struct {
	TotalDays     int             `json:"totalDays"`
	CompletedDays int             `json:"completedDays"`
	Percent       float64         `json:"percent"`
	PerMonth      []MonthProgress `json:"perMonth"`
	CurrentStreak int             `json:"currentStreak"`
	BestStreak    int             `json:"bestStreak"`
	XP            int             `json:"xp"`
	Level         int             `json:"level"`
	LevelName     string          `json:"levelName"`
	LevelIcon     string          `json:"levelIcon"`
	XPToNextLevel int             `json:"xpToNextLevel"`
	CurrentMonth  MonthStatus     `json:"currentMonth"`
}
