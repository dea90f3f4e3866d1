// internal/handlers/reading_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RaczoOBY/bible-app/internal/middleware"
	"github.com/RaczoOBY/bible-app/internal/model"
	"github.com/RaczoOBY/bible-app/internal/service"
	"github.com/RaczoOBY/bible-app/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type ReadingHandler struct {
	service service.ReadingService
}

func NewReadingHandler(s service.ReadingService) *ReadingHandler {
	return &ReadingHandler{service: s}
}

// ToggleReading handles POST /api/v1/readings/toggle.
func (h *ReadingHandler) ToggleReading(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.ToggleReadingRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "Corpo da requisição inválido.", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			webutil.HandleError(w, webutil.NewValidationErrorResponse(validationErrs))
			return
		}
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "Requisição inválida.", "", model.ErrInvalidInput))
		return
	}

	resp, err := h.service.ToggleReading(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetDayReadings handles GET /api/v1/readings/day?month=&day=.
func (h *ReadingHandler) GetDayReadings(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "Parâmetro 'month' inválido.", "month", model.ErrInvalidInput))
		return
	}
	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil {
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "Parâmetro 'day' inválido.", "day", model.ErrInvalidInput))
		return
	}

	resp, err := h.service.GetDayReadings(r.Context(), userID, month, day)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
