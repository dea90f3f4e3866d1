// internal/handlers/plan_handler.go
package handlers

import (
	"net/http"

	"github.com/RaczoOBY/bible-app/internal/plan"
	"github.com/RaczoOBY/bible-app/internal/webutil"
)

type PlanHandler struct {
	catalog *plan.Catalog
}

func NewPlanHandler(catalog *plan.Catalog) *PlanHandler {
	return &PlanHandler{catalog: catalog}
}

type planMonthResponse struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Books   plan.SlotNames `json:"books"`
	Abbrevs plan.SlotNames `json:"abbrevs"`
}

type planResponse struct {
	TotalDays     int                 `json:"totalDays"`
	DaysPerMonth  int                 `json:"daysPerMonth"`
	XPPerReading  int                 `json:"xpPerReading"`
	XPDayComplete int                 `json:"xpDayComplete"`
	Multipliers   map[string]float64  `json:"multipliers"`
	Levels        []plan.Level        `json:"levels"`
	Months        []planMonthResponse `json:"months"`
}

// GetPlan handles GET /api/v1/plan: plan metadata for the presentation layer.
// Day-by-day references come from GET /readings/day instead.
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	gam := h.catalog.Gamification()

	months := make([]planMonthResponse, 0, len(h.catalog.Months()))
	for _, m := range h.catalog.Months() {
		months = append(months, planMonthResponse{
			ID:      m.ID,
			Name:    m.Name,
			Books:   m.Books,
			Abbrevs: m.Abbrevs,
		})
	}

	webutil.RespondWithJSON(w, http.StatusOK, planResponse{
		TotalDays:     h.catalog.TotalDays(),
		DaysPerMonth:  h.catalog.DaysPerPlanMonth(),
		XPPerReading:  gam.XPPerReading,
		XPDayComplete: gam.XPDayComplete,
		Multipliers:   gam.Multipliers,
		Levels:        h.catalog.Levels(),
		Months:        months,
	})
}
