// internal/handlers/achievement_handler.go
package handlers

import (
	"net/http"

	"github.com/RaczoOBY/bible-app/internal/middleware"
	"github.com/RaczoOBY/bible-app/internal/service"
	"github.com/RaczoOBY/bible-app/internal/webutil"
)

type AchievementHandler struct {
	service service.AchievementService
}

func NewAchievementHandler(s service.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: s}
}

// ListAchievements handles GET /api/v1/achievements.
func (h *AchievementHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	resp, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
