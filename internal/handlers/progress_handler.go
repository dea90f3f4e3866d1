// internal/handlers/progress_handler.go
package handlers

import (
	"net/http"

	"github.com/RaczoOBY/bible-app/internal/middleware"
	"github.com/RaczoOBY/bible-app/internal/service"
	"github.com/RaczoOBY/bible-app/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetProgress handles GET /api/v1/progress.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	summary, err := h.service.GetSummary(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, summary)
}
